package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/model/auth"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// MinistryUseCase manages ministry reference data
type MinistryUseCase struct {
	repo interfaces.Repository
}

func NewMinistryUseCase(repo interfaces.Repository) *MinistryUseCase {
	return &MinistryUseCase{repo: repo}
}

func (uc *MinistryUseCase) CreateMinistry(ctx context.Context, ministry *model.Ministry) (*model.Ministry, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !model.CapabilitiesFor(ident.Role).ManageMinistries {
		return nil, goerr.Wrap(ErrForbidden, "role cannot manage ministries", goerr.V("role", ident.Role))
	}

	if err := ministry.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Ministry().Create(ctx, ministry)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create ministry", goerr.V("name", ministry.Name))
	}
	return created, nil
}

func (uc *MinistryUseCase) UpdateMinistry(ctx context.Context, ministry *model.Ministry) (*model.Ministry, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !model.CapabilitiesFor(ident.Role).ManageMinistries {
		return nil, goerr.Wrap(ErrForbidden, "role cannot manage ministries", goerr.V("role", ident.Role))
	}

	if err := ministry.Validate(); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Ministry().Update(ctx, ministry)
	if err != nil {
		return nil, goerr.Wrap(ErrMinistryNotFound, "ministry not found", goerr.V("ministry_id", ministry.ID))
	}
	return updated, nil
}

func (uc *MinistryUseCase) GetMinistry(ctx context.Context, id types.MinistryID) (*model.Ministry, error) {
	if _, err := auth.IdentityFromContext(ctx); err != nil {
		return nil, err
	}

	ministry, err := uc.repo.Ministry().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrMinistryNotFound, "ministry not found", goerr.V("ministry_id", id))
	}
	return ministry, nil
}

func (uc *MinistryUseCase) ListMinistries(ctx context.Context) ([]*model.Ministry, error) {
	if _, err := auth.IdentityFromContext(ctx); err != nil {
		return nil, err
	}

	ministries, err := uc.repo.Ministry().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list ministries")
	}
	return ministries, nil
}

func (uc *MinistryUseCase) DeleteMinistry(ctx context.Context, id types.MinistryID) error {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	if !model.CapabilitiesFor(ident.Role).ManageMinistries {
		return goerr.Wrap(ErrForbidden, "role cannot manage ministries", goerr.V("role", ident.Role))
	}

	if err := uc.repo.Ministry().Delete(ctx, id); err != nil {
		return goerr.Wrap(ErrMinistryNotFound, "ministry not found", goerr.V("ministry_id", id))
	}
	return nil
}
