package model

import (
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// Task represents a unit of work assigned to a department or an individual
type Task struct {
	ID           int64
	Title        string
	Description  string
	AssignedBy   types.UserID       // Creating leadership user
	DepartmentID types.DepartmentID // Target department
	AssignedTo   types.UserID       // Optional: specific assignee within the department
	Priority     types.Priority
	Status       types.TaskStatus
	DueDate      *time.Time
	CompletedAt  *time.Time // Set iff Status == completed
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks structural invariants of the task
func (t *Task) Validate() error {
	if t.Title == "" {
		return NewValidationError("task title is required")
	}
	if err := t.DepartmentID.Validate(); err != nil {
		return err
	}
	if !t.Status.Normalize().IsValid() {
		return NewValidationError("invalid task status: " + t.Status.String())
	}
	if !t.Priority.Normalize().IsValid() {
		return NewValidationError("invalid task priority: " + t.Priority.String())
	}
	if (t.CompletedAt != nil) != (t.Status == types.TaskStatusCompleted) {
		return NewValidationError("completedAt must be set exactly when status is completed")
	}
	return nil
}
