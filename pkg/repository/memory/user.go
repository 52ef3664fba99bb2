package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[types.UserID]*model.User
}

func newUserRepository() *userRepository {
	return &userRepository{
		users: make(map[types.UserID]*model.User),
	}
}

func copyUser(u *model.User) *model.User {
	copied := *u
	return &copied
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		return nil, goerr.Wrap(ErrAlreadyExists, "user already exists", goerr.V("id", user.ID))
	}

	now := time.Now().UTC()
	created := copyUser(user)
	created.CreatedAt = now
	created.UpdatedAt = now

	r.users[created.ID] = created
	return copyUser(created), nil
}

func (r *userRepository) Get(ctx context.Context, id types.UserID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", id))
	}

	return copyUser(user), nil
}

func (r *userRepository) List(ctx context.Context, opts ...interfaces.ListUserOption) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg := interfaces.BuildListUserConfig(opts...)

	users := make([]*model.User, 0, len(r.users))
	for _, user := range r.users {
		if cfg.Department() != nil && user.DepartmentID != *cfg.Department() {
			continue
		}
		if cfg.ActiveOnly() && !user.IsActive {
			continue
		}
		users = append(users, copyUser(user))
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].FullName < users[j].FullName
	})

	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.users[user.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", user.ID))
	}

	updated := copyUser(user)
	updated.Email = existing.Email // email is immutable
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.users[updated.ID] = updated
	return copyUser(updated), nil
}

func (r *userRepository) Delete(ctx context.Context, id types.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[id]; !exists {
		return goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", id))
	}

	delete(r.users, id)
	return nil
}
