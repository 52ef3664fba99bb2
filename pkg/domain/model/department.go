package model

import (
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// Department is reference data: workflow operations never mutate it.
type Department struct {
	ID          types.DepartmentID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks structural invariants of the department
func (d *Department) Validate() error {
	if d.Name == "" {
		return NewValidationError("department name is required")
	}
	return nil
}
