package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type departmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newDepartmentRepository(client *firestore.Client) *departmentRepository {
	return &departmentRepository{client: client}
}

func (r *departmentRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_departments"
	}
	return "departments"
}

func (r *departmentRepository) Create(ctx context.Context, dept *model.Department) (*model.Department, error) {
	created := *dept
	if created.ID == "" {
		created.ID = types.NewDepartmentID()
	}

	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	docRef := r.client.Collection(r.collection()).Doc(created.ID.String())
	if _, err := docRef.Create(ctx, &created); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(ErrAlreadyExists, "department already exists", goerr.V("id", created.ID))
		}
		return nil, wrapStoreErr(err, "failed to create department", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *departmentRepository) Get(ctx context.Context, id types.DepartmentID) (*model.Department, error) {
	snap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "department not found", goerr.V("id", id))
		}
		return nil, wrapStoreErr(err, "failed to get department", goerr.V("id", id))
	}

	var dept model.Department
	if err := snap.DataTo(&dept); err != nil {
		return nil, goerr.Wrap(err, "failed to decode department", goerr.V("id", id))
	}

	return &dept, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]*model.Department, error) {
	iter := r.client.Collection(r.collection()).OrderBy("Name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var departments []*model.Department
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStoreErr(err, "failed to iterate departments")
		}

		var dept model.Department
		if err := snap.DataTo(&dept); err != nil {
			return nil, goerr.Wrap(err, "failed to decode department", goerr.V("doc", snap.Ref.ID))
		}
		departments = append(departments, &dept)
	}

	if departments == nil {
		departments = []*model.Department{}
	}
	return departments, nil
}

func (r *departmentRepository) Update(ctx context.Context, dept *model.Department) (*model.Department, error) {
	docRef := r.client.Collection(r.collection()).Doc(dept.ID.String())

	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "department not found", goerr.V("id", dept.ID))
		}
		return nil, wrapStoreErr(err, "failed to get department", goerr.V("id", dept.ID))
	}

	var existing model.Department
	if err := snap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode department", goerr.V("id", dept.ID))
	}

	updated := *dept
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, wrapStoreErr(err, "failed to update department", goerr.V("id", dept.ID))
	}

	return &updated, nil
}

func (r *departmentRepository) Delete(ctx context.Context, id types.DepartmentID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "department not found", goerr.V("id", id))
		}
		return wrapStoreErr(err, "failed to get department", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return wrapStoreErr(err, "failed to delete department", goerr.V("id", id))
	}

	return nil
}
