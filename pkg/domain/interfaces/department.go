package interfaces

import (
	"context"

	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// DepartmentRepository defines the interface for Department data access
type DepartmentRepository interface {
	// Create creates a new department. The caller may supply an ID; when
	// empty a random one is generated.
	Create(ctx context.Context, dept *model.Department) (*model.Department, error)

	// Get retrieves a department by ID
	Get(ctx context.Context, id types.DepartmentID) (*model.Department, error)

	// List retrieves all departments ordered by name
	List(ctx context.Context) ([]*model.Department, error)

	// Update updates an existing department
	Update(ctx context.Context, dept *model.Department) (*model.Department, error)

	// Delete deletes a department by ID
	Delete(ctx context.Context, id types.DepartmentID) error
}
