package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/model/auth"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// DepartmentUseCase manages department reference data
type DepartmentUseCase struct {
	repo interfaces.Repository
}

func NewDepartmentUseCase(repo interfaces.Repository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

func (uc *DepartmentUseCase) CreateDepartment(ctx context.Context, dept *model.Department) (*model.Department, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !model.CapabilitiesFor(ident.Role).ManageDepartments {
		return nil, goerr.Wrap(ErrForbidden, "role cannot manage departments", goerr.V("role", ident.Role))
	}

	if err := dept.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Department().Create(ctx, dept)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create department", goerr.V("name", dept.Name))
	}
	return created, nil
}

func (uc *DepartmentUseCase) UpdateDepartment(ctx context.Context, dept *model.Department) (*model.Department, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !model.CapabilitiesFor(ident.Role).ManageDepartments {
		return nil, goerr.Wrap(ErrForbidden, "role cannot manage departments", goerr.V("role", ident.Role))
	}

	if err := dept.Validate(); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Department().Update(ctx, dept)
	if err != nil {
		return nil, goerr.Wrap(ErrDepartmentNotFound, "department not found", goerr.V("department_id", dept.ID))
	}
	return updated, nil
}

func (uc *DepartmentUseCase) GetDepartment(ctx context.Context, id types.DepartmentID) (*model.Department, error) {
	if _, err := auth.IdentityFromContext(ctx); err != nil {
		return nil, err
	}

	dept, err := uc.repo.Department().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrDepartmentNotFound, "department not found", goerr.V("department_id", id))
	}
	return dept, nil
}

func (uc *DepartmentUseCase) ListDepartments(ctx context.Context) ([]*model.Department, error) {
	if _, err := auth.IdentityFromContext(ctx); err != nil {
		return nil, err
	}

	departments, err := uc.repo.Department().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list departments")
	}
	return departments, nil
}

// DeleteDepartment removes a department. Departments with members cannot be
// removed.
func (uc *DepartmentUseCase) DeleteDepartment(ctx context.Context, id types.DepartmentID) error {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	if !model.CapabilitiesFor(ident.Role).ManageDepartments {
		return goerr.Wrap(ErrForbidden, "role cannot manage departments", goerr.V("role", ident.Role))
	}

	members, err := uc.repo.User().List(ctx, interfaces.WithUserDepartment(id))
	if err != nil {
		return goerr.Wrap(err, "failed to check department members", goerr.V("department_id", id))
	}
	if len(members) > 0 {
		return model.NewValidationError("department still has members")
	}

	if err := uc.repo.Department().Delete(ctx, id); err != nil {
		return goerr.Wrap(ErrDepartmentNotFound, "department not found", goerr.V("department_id", id))
	}
	return nil
}
