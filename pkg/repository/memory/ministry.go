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

type ministryRepository struct {
	mu         sync.RWMutex
	ministries map[types.MinistryID]*model.Ministry
}

func newMinistryRepository() *ministryRepository {
	return &ministryRepository{
		ministries: make(map[types.MinistryID]*model.Ministry),
	}
}

func copyMinistry(m *model.Ministry) *model.Ministry {
	copied := *m
	return &copied
}

func (r *ministryRepository) Create(ctx context.Context, ministry *model.Ministry) (*model.Ministry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyMinistry(ministry)
	if created.ID == "" {
		created.ID = types.NewMinistryID()
	}

	if _, exists := r.ministries[created.ID]; exists {
		return nil, goerr.Wrap(ErrAlreadyExists, "ministry already exists", goerr.V("id", created.ID))
	}

	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.ministries[created.ID] = created
	return copyMinistry(created), nil
}

func (r *ministryRepository) Get(ctx context.Context, id types.MinistryID) (*model.Ministry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ministry, exists := r.ministries[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "ministry not found", goerr.V("id", id))
	}

	return copyMinistry(ministry), nil
}

func (r *ministryRepository) List(ctx context.Context) ([]*model.Ministry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ministries := make([]*model.Ministry, 0, len(r.ministries))
	for _, ministry := range r.ministries {
		ministries = append(ministries, copyMinistry(ministry))
	}

	sort.Slice(ministries, func(i, j int) bool {
		return ministries[i].Name < ministries[j].Name
	})

	return ministries, nil
}

func (r *ministryRepository) Update(ctx context.Context, ministry *model.Ministry) (*model.Ministry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.ministries[ministry.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "ministry not found", goerr.V("id", ministry.ID))
	}

	updated := copyMinistry(ministry)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.ministries[updated.ID] = updated
	return copyMinistry(updated), nil
}

func (r *ministryRepository) Delete(ctx context.Context, id types.MinistryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ministries[id]; !exists {
		return goerr.Wrap(ErrNotFound, "ministry not found", goerr.V("id", id))
	}

	delete(r.ministries, id)
	return nil
}
