package interfaces

import (
	"context"

	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// UserRepository defines the interface for user profile data access. The
// identity provider owns user creation; profiles mirror it for workflow use.
type UserRepository interface {
	// Create stores a new user profile keyed by the provider-issued ID
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// Get retrieves a user profile by ID
	Get(ctx context.Context, id types.UserID) (*model.User, error)

	// List retrieves user profiles with optional conjunctive filtering
	List(ctx context.Context, opts ...ListUserOption) ([]*model.User, error)

	// Update updates a user profile. Email is immutable and preserved.
	Update(ctx context.Context, user *model.User) (*model.User, error)

	// Delete removes a user profile by ID
	Delete(ctx context.Context, id types.UserID) error
}
