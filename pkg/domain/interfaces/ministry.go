package interfaces

import (
	"context"

	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// MinistryRepository defines the interface for Ministry data access
type MinistryRepository interface {
	// Create creates a new ministry. The caller may supply an ID; when empty
	// a random one is generated.
	Create(ctx context.Context, ministry *model.Ministry) (*model.Ministry, error)

	// Get retrieves a ministry by ID
	Get(ctx context.Context, id types.MinistryID) (*model.Ministry, error)

	// List retrieves all ministries ordered by name
	List(ctx context.Context) ([]*model.Ministry, error)

	// Update updates an existing ministry
	Update(ctx context.Context, ministry *model.Ministry) (*model.Ministry, error)

	// Delete deletes a ministry by ID
	Delete(ctx context.Context, id types.MinistryID) error
}
