package model

import (
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// Ministry represents a top-level government ministry
type Ministry struct {
	ID          types.MinistryID
	Name        string
	Description string
	Code        string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks structural invariants of the ministry
func (m *Ministry) Validate() error {
	if m.Name == "" {
		return NewValidationError("ministry name is required")
	}
	return nil
}
