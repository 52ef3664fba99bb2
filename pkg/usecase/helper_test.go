package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/model/auth"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
	"github.com/govops-lab/ministrydesk/pkg/repository/memory"
	"github.com/govops-lab/ministrydesk/pkg/usecase"
)

var testClock = func() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

const (
	financeDept = types.DepartmentID("dept-finance")
	healthDept  = types.DepartmentID("dept-health")
)

// setup seeds two departments and one user per role, and returns use cases
// running on a fixed clock.
func setup(t *testing.T) (*usecase.UseCases, interfaces.Repository) {
	t.Helper()

	repo := memory.New()
	ctx := context.Background()

	for _, dept := range []*model.Department{
		{ID: financeDept, Name: "Finance"},
		{ID: healthDept, Name: "Health"},
	} {
		_, err := repo.Department().Create(ctx, dept)
		gt.NoError(t, err).Required()
	}

	for _, user := range []*model.User{
		{ID: "user-admin", Email: "admin@ministry.example", FullName: "Ada Admin", Role: types.RoleAdmin, IsActive: true},
		{ID: "user-dg", Email: "dg@ministry.example", FullName: "Dana DG", Role: types.RoleDG, IsActive: true},
		{ID: "user-minister", Email: "minister@ministry.example", FullName: "Mina Minister", Role: types.RoleMinister, IsActive: true},
		{ID: "user-finance", Email: "finance@ministry.example", FullName: "Fia Finance", Role: types.RoleDepartmentUser, DepartmentID: financeDept, IsActive: true},
		{ID: "user-health", Email: "health@ministry.example", FullName: "Hana Health", Role: types.RoleDepartmentUser, DepartmentID: healthDept, IsActive: true},
	} {
		_, err := repo.User().Create(ctx, user)
		gt.NoError(t, err).Required()
	}

	uc := usecase.New(repo, usecase.WithClock(testClock))
	return uc, repo
}

func asUser(t *testing.T, repo interfaces.Repository, id types.UserID) context.Context {
	t.Helper()

	user, err := repo.User().Get(context.Background(), id)
	gt.NoError(t, err).Required()

	return auth.ContextWithIdentity(context.Background(), &auth.Identity{
		Sub:          user.ID,
		Role:         user.Role,
		DepartmentID: user.DepartmentID,
		Email:        user.Email,
		Name:         user.FullName,
	})
}
