package interfaces

import (
	"context"

	"github.com/govops-lab/ministrydesk/pkg/domain/model"
)

// TaskRepository defines the interface for Task data access
type TaskRepository interface {
	// Create creates a new task with auto-generated ID
	Create(ctx context.Context, task *model.Task) (*model.Task, error)

	// Get retrieves a task by ID
	Get(ctx context.Context, id int64) (*model.Task, error)

	// List retrieves tasks with optional conjunctive filtering, newest first
	List(ctx context.Context, opts ...ListTaskOption) ([]*model.Task, error)

	// Update updates an existing task
	Update(ctx context.Context, task *model.Task) (*model.Task, error)

	// Delete deletes a task by ID
	Delete(ctx context.Context, id int64) error
}
