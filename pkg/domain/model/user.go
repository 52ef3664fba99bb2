package model

import (
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// User represents a user profile. Identity creation is owned by the external
// auth provider; profile fields are managed here by admins.
type User struct {
	ID           types.UserID
	Email        string // Immutable after creation
	FullName     string
	Role         types.Role
	DepartmentID types.DepartmentID // Optional for leadership roles
	AvatarURL    string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks structural invariants of the user profile
func (u *User) Validate() error {
	if err := u.ID.Validate(); err != nil {
		return err
	}
	if u.Email == "" {
		return NewValidationError("user email is required")
	}
	if !u.Role.IsValid() {
		return NewValidationError("invalid role: " + u.Role.String())
	}
	if u.Role == types.RoleDepartmentUser && u.DepartmentID == "" {
		return NewValidationError("department user requires a department")
	}
	return nil
}
