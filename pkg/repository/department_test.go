package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

func runDepartmentRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create generates ID when empty", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Department().Create(ctx, &model.Department{
			Name:        "Finance",
			Description: "Budget and treasury operations",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID).NotEqual(types.DepartmentID(""))
		gt.Value(t, created.Name).Equal("Finance")
		gt.Bool(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("Create keeps caller-provided ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Department().Create(ctx, &model.Department{
			ID:   "dept-health",
			Name: "Health",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).Equal(types.DepartmentID("dept-health"))
	})

	t.Run("Create rejects duplicate ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Department().Create(ctx, &model.Department{
			ID:   "dept-dup",
			Name: "First",
		})
		gt.NoError(t, err).Required()

		_, err = repo.Department().Create(ctx, &model.Department{
			ID:   "dept-dup",
			Name: "Second",
		})
		gt.Value(t, err).NotNil()
	})

	t.Run("Get returns error for non-existent department", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Department().Get(ctx, "dept-nonexistent")
		gt.Value(t, err).NotNil()
	})

	t.Run("Update modifies fields and preserves CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Department().Create(ctx, &model.Department{
			ID:   "dept-works",
			Name: "Public Works",
		})
		gt.NoError(t, err).Required()

		created.Description = "Infrastructure and maintenance"
		updated, err := repo.Department().Update(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Description).Equal("Infrastructure and maintenance")
		gt.Bool(t, updated.CreatedAt.Equal(created.CreatedAt)).True()
	})

	t.Run("Delete removes department", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Department().Create(ctx, &model.Department{
			ID:   "dept-temp",
			Name: "Temporary",
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Department().Delete(ctx, created.ID)).Required()

		_, err = repo.Department().Get(ctx, created.ID)
		gt.Value(t, err).NotNil()
	})

	t.Run("List returns departments sorted by name", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, name := range []string{"Transport", "Agriculture", "Health"} {
			_, err := repo.Department().Create(ctx, &model.Department{Name: name})
			gt.NoError(t, err).Required()
		}

		departments, err := repo.Department().List(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, len(departments)).Equal(3)
		gt.Value(t, departments[0].Name).Equal("Agriculture")
		gt.Value(t, departments[1].Name).Equal("Health")
		gt.Value(t, departments[2].Name).Equal("Transport")
	})

	t.Run("List returns empty slice for empty store", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		departments, err := repo.Department().List(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, departments).NotNil()
		gt.Number(t, len(departments)).Equal(0)
	})
}

func TestDepartmentRepository_Memory(t *testing.T) {
	runDepartmentRepositoryTest(t, newMemoryRepo)
}

func TestDepartmentRepository_Firestore(t *testing.T) {
	if os.Getenv("FIRESTORE_PROJECT_ID") == "" {
		t.Skip("FIRESTORE_PROJECT_ID not set")
	}
	runDepartmentRepositoryTest(t, newFirestoreRepo)
}
