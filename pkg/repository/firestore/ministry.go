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

type ministryRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMinistryRepository(client *firestore.Client) *ministryRepository {
	return &ministryRepository{client: client}
}

func (r *ministryRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_ministries"
	}
	return "ministries"
}

func (r *ministryRepository) Create(ctx context.Context, ministry *model.Ministry) (*model.Ministry, error) {
	created := *ministry
	if created.ID == "" {
		created.ID = types.NewMinistryID()
	}

	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	docRef := r.client.Collection(r.collection()).Doc(created.ID.String())
	if _, err := docRef.Create(ctx, &created); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(ErrAlreadyExists, "ministry already exists", goerr.V("id", created.ID))
		}
		return nil, wrapStoreErr(err, "failed to create ministry", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *ministryRepository) Get(ctx context.Context, id types.MinistryID) (*model.Ministry, error) {
	snap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "ministry not found", goerr.V("id", id))
		}
		return nil, wrapStoreErr(err, "failed to get ministry", goerr.V("id", id))
	}

	var ministry model.Ministry
	if err := snap.DataTo(&ministry); err != nil {
		return nil, goerr.Wrap(err, "failed to decode ministry", goerr.V("id", id))
	}

	return &ministry, nil
}

func (r *ministryRepository) List(ctx context.Context) ([]*model.Ministry, error) {
	iter := r.client.Collection(r.collection()).OrderBy("Name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var ministries []*model.Ministry
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStoreErr(err, "failed to iterate ministries")
		}

		var ministry model.Ministry
		if err := snap.DataTo(&ministry); err != nil {
			return nil, goerr.Wrap(err, "failed to decode ministry", goerr.V("doc", snap.Ref.ID))
		}
		ministries = append(ministries, &ministry)
	}

	if ministries == nil {
		ministries = []*model.Ministry{}
	}
	return ministries, nil
}

func (r *ministryRepository) Update(ctx context.Context, ministry *model.Ministry) (*model.Ministry, error) {
	docRef := r.client.Collection(r.collection()).Doc(ministry.ID.String())

	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "ministry not found", goerr.V("id", ministry.ID))
		}
		return nil, wrapStoreErr(err, "failed to get ministry", goerr.V("id", ministry.ID))
	}

	var existing model.Ministry
	if err := snap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode ministry", goerr.V("id", ministry.ID))
	}

	updated := *ministry
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, wrapStoreErr(err, "failed to update ministry", goerr.V("id", ministry.ID))
	}

	return &updated, nil
}

func (r *ministryRepository) Delete(ctx context.Context, id types.MinistryID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "ministry not found", goerr.V("id", id))
		}
		return wrapStoreErr(err, "failed to get ministry", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return wrapStoreErr(err, "failed to delete ministry", goerr.V("id", id))
	}

	return nil
}
