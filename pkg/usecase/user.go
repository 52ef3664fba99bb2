package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/model/auth"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// UserUseCase manages user profiles. Identity creation lives with the
// external auth provider; only the profile record is managed here.
type UserUseCase struct {
	repo interfaces.Repository
}

func NewUserUseCase(repo interfaces.Repository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// CreateProfile registers a profile for a provider-issued user ID
func (uc *UserUseCase) CreateProfile(ctx context.Context, user *model.User) (*model.User, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !model.CapabilitiesFor(ident.Role).ManageUsers {
		return nil, goerr.Wrap(ErrForbidden, "role cannot manage users", goerr.V("role", ident.Role))
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	if user.DepartmentID != "" {
		if _, err := uc.repo.Department().Get(ctx, user.DepartmentID); err != nil {
			return nil, goerr.Wrap(ErrDepartmentNotFound, "department not found",
				goerr.V("department_id", user.DepartmentID))
		}
	}

	created, err := uc.repo.User().Create(ctx, user)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create user profile", goerr.V(UserIDKey, user.ID))
	}
	return created, nil
}

// UpdateProfile updates a profile. Email is immutable and preserved by the
// store layer.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, user *model.User) (*model.User, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !model.CapabilitiesFor(ident.Role).ManageUsers {
		return nil, goerr.Wrap(ErrForbidden, "role cannot manage users", goerr.V("role", ident.Role))
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	updated, err := uc.repo.User().Update(ctx, user)
	if err != nil {
		return nil, goerr.Wrap(ErrUserNotFound, "user not found", goerr.V(UserIDKey, user.ID))
	}
	return updated, nil
}

// GetProfile returns a profile. Any authenticated caller may read profiles;
// they back the user directory and sender names in the feed.
func (uc *UserUseCase) GetProfile(ctx context.Context, id types.UserID) (*model.User, error) {
	if _, err := auth.IdentityFromContext(ctx); err != nil {
		return nil, err
	}

	user, err := uc.repo.User().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrUserNotFound, "user not found", goerr.V(UserIDKey, id))
	}
	return user, nil
}

// ListProfiles returns profiles matching the filters
func (uc *UserUseCase) ListProfiles(ctx context.Context, opts ...interfaces.ListUserOption) ([]*model.User, error) {
	if _, err := auth.IdentityFromContext(ctx); err != nil {
		return nil, err
	}

	users, err := uc.repo.User().List(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list user profiles")
	}
	return users, nil
}

// DeactivateProfile marks a profile inactive instead of deleting it, so
// historical tasks and reports keep resolvable senders.
func (uc *UserUseCase) DeactivateProfile(ctx context.Context, id types.UserID) (*model.User, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !model.CapabilitiesFor(ident.Role).ManageUsers {
		return nil, goerr.Wrap(ErrForbidden, "role cannot manage users", goerr.V("role", ident.Role))
	}

	user, err := uc.repo.User().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrUserNotFound, "user not found", goerr.V(UserIDKey, id))
	}

	user.IsActive = false
	updated, err := uc.repo.User().Update(ctx, user)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to deactivate user", goerr.V(UserIDKey, id))
	}
	return updated, nil
}
