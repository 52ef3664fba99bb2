package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type departmentRepository struct {
	mu          sync.RWMutex
	departments map[types.DepartmentID]*model.Department
}

func newDepartmentRepository() *departmentRepository {
	return &departmentRepository{
		departments: make(map[types.DepartmentID]*model.Department),
	}
}

func copyDepartment(d *model.Department) *model.Department {
	copied := *d
	return &copied
}

func (r *departmentRepository) Create(ctx context.Context, dept *model.Department) (*model.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyDepartment(dept)
	if created.ID == "" {
		created.ID = types.NewDepartmentID()
	}

	if _, exists := r.departments[created.ID]; exists {
		return nil, goerr.Wrap(ErrAlreadyExists, "department already exists", goerr.V("id", created.ID))
	}

	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.departments[created.ID] = created
	return copyDepartment(created), nil
}

func (r *departmentRepository) Get(ctx context.Context, id types.DepartmentID) (*model.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dept, exists := r.departments[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "department not found", goerr.V("id", id))
	}

	return copyDepartment(dept), nil
}

func (r *departmentRepository) List(ctx context.Context) ([]*model.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	departments := make([]*model.Department, 0, len(r.departments))
	for _, dept := range r.departments {
		departments = append(departments, copyDepartment(dept))
	}

	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Name < departments[j].Name
	})

	return departments, nil
}

func (r *departmentRepository) Update(ctx context.Context, dept *model.Department) (*model.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.departments[dept.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "department not found", goerr.V("id", dept.ID))
	}

	updated := copyDepartment(dept)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.departments[updated.ID] = updated
	return copyDepartment(updated), nil
}

func (r *departmentRepository) Delete(ctx context.Context, id types.DepartmentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.departments[id]; !exists {
		return goerr.Wrap(ErrNotFound, "department not found", goerr.V("id", id))
	}

	delete(r.departments, id)
	return nil
}
