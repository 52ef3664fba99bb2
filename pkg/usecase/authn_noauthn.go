package usecase

import (
	"context"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model/auth"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// NoAuthnUseCase provides authentication using a specified user (for development/testing)
type NoAuthnUseCase struct {
	repo interfaces.Repository
	uid  types.UserID
}

var _ AuthUseCaseInterface = &NoAuthnUseCase{}

// NewNoAuthnUseCase creates a new NoAuthnUseCase instance with the specified user ID
func NewNoAuthnUseCase(repo interfaces.Repository, uid types.UserID) *NoAuthnUseCase {
	return &NoAuthnUseCase{
		repo: repo,
		uid:  uid,
	}
}

// VerifyToken ignores the token. When a profile exists for the configured
// user it is used; otherwise an admin identity is fabricated.
func (uc *NoAuthnUseCase) VerifyToken(ctx context.Context, token string) (*auth.Identity, error) {
	if uc.uid != "" {
		if user, err := uc.repo.User().Get(ctx, uc.uid); err == nil {
			return &auth.Identity{
				Sub:          user.ID,
				Role:         user.Role,
				DepartmentID: user.DepartmentID,
				Email:        user.Email,
				Name:         user.FullName,
			}, nil
		}
	}
	return auth.NewAnonymousIdentity(uc.uid), nil
}

// IsNoAuthn returns true for NoAuthnUseCase
func (uc *NoAuthnUseCase) IsNoAuthn() bool {
	return true
}
