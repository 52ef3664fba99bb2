package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type taskRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newTaskRepository(client *firestore.Client) *taskRepository {
	return &taskRepository{client: client}
}

func (r *taskRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_tasks"
	}
	return "tasks"
}

func (r *taskRepository) counterCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	id, err := nextID(ctx, r.client, r.counterCollection(), "task_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *task
	created.ID = id
	created.Status = created.Status.Normalize()
	created.Priority = created.Priority.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	docID := fmt.Sprintf("%d", created.ID)
	if _, err := r.client.Collection(r.collection()).Doc(docID).Set(ctx, &created); err != nil {
		return nil, wrapStoreErr(err, "failed to create task", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *taskRepository) Get(ctx context.Context, id int64) (*model.Task, error) {
	docID := fmt.Sprintf("%d", id)
	snap, err := r.client.Collection(r.collection()).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", id))
		}
		return nil, wrapStoreErr(err, "failed to get task", goerr.V("id", id))
	}

	var task model.Task
	if err := snap.DataTo(&task); err != nil {
		return nil, goerr.Wrap(err, "failed to decode task", goerr.V("id", id))
	}

	return &task, nil
}

func (r *taskRepository) List(ctx context.Context, opts ...interfaces.ListTaskOption) ([]*model.Task, error) {
	cfg := interfaces.BuildListTaskConfig(opts...)

	query := r.client.Collection(r.collection()).Query
	if cfg.Status() != nil {
		query = query.Where("Status", "==", cfg.Status().String())
	}
	if cfg.Department() != nil {
		query = query.Where("DepartmentID", "==", cfg.Department().String())
	}
	if cfg.AssignedTo() != nil {
		query = query.Where("AssignedTo", "==", cfg.AssignedTo().String())
	}
	query = query.OrderBy("CreatedAt", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var tasks []*model.Task
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStoreErr(err, "failed to iterate tasks")
		}

		var task model.Task
		if err := snap.DataTo(&task); err != nil {
			return nil, goerr.Wrap(err, "failed to decode task", goerr.V("doc", snap.Ref.ID))
		}
		tasks = append(tasks, &task)
	}

	if tasks == nil {
		tasks = []*model.Task{}
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	docID := fmt.Sprintf("%d", task.ID)
	docRef := r.client.Collection(r.collection()).Doc(docID)

	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", task.ID))
		}
		return nil, wrapStoreErr(err, "failed to get task", goerr.V("id", task.ID))
	}

	var existing model.Task
	if err := snap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode task", goerr.V("id", task.ID))
	}

	updated := *task
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, wrapStoreErr(err, "failed to update task", goerr.V("id", task.ID))
	}

	return &updated, nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	docID := fmt.Sprintf("%d", id)
	docRef := r.client.Collection(r.collection()).Doc(docID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", id))
		}
		return wrapStoreErr(err, "failed to get task", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return wrapStoreErr(err, "failed to delete task", goerr.V("id", id))
	}

	return nil
}
