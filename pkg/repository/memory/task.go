package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type taskRepository struct {
	mu     sync.RWMutex
	tasks  map[int64]*model.Task
	nextID int64
}

func newTaskRepository() *taskRepository {
	return &taskRepository{
		tasks:  make(map[int64]*model.Task),
		nextID: 1,
	}
}

// copyTask creates a deep copy of a task
func copyTask(t *model.Task) *model.Task {
	copied := *t
	if t.DueDate != nil {
		due := *t.DueDate
		copied.DueDate = &due
	}
	if t.CompletedAt != nil {
		completed := *t.CompletedAt
		copied.CompletedAt = &completed
	}
	return &copied
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyTask(task)
	created.ID = r.nextID
	created.Status = created.Status.Normalize()
	created.Priority = created.Priority.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.tasks[created.ID] = created
	return copyTask(created), nil
}

func (r *taskRepository) Get(ctx context.Context, id int64) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, exists := r.tasks[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", id))
	}

	return copyTask(task), nil
}

func (r *taskRepository) List(ctx context.Context, opts ...interfaces.ListTaskOption) ([]*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg := interfaces.BuildListTaskConfig(opts...)

	tasks := make([]*model.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if cfg.Status() != nil && task.Status != *cfg.Status() {
			continue
		}
		if cfg.Department() != nil && task.DepartmentID != *cfg.Department() {
			continue
		}
		if cfg.AssignedTo() != nil && task.AssignedTo != *cfg.AssignedTo() {
			continue
		}
		tasks = append(tasks, copyTask(task))
	}

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID > tasks[j].ID
		}
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.tasks[task.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", task.ID))
	}

	updated := copyTask(task)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.tasks[updated.ID] = updated
	return copyTask(updated), nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[id]; !exists {
		return goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", id))
	}

	delete(r.tasks, id)
	return nil
}
