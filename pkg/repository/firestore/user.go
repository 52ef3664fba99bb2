package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newUserRepository(client *firestore.Client) *userRepository {
	return &userRepository{client: client}
}

func (r *userRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_user_profiles"
	}
	return "user_profiles"
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now().UTC()
	created := *user
	created.CreatedAt = now
	created.UpdatedAt = now

	docRef := r.client.Collection(r.collection()).Doc(created.ID.String())
	if _, err := docRef.Create(ctx, &created); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(ErrAlreadyExists, "user already exists", goerr.V("id", created.ID))
		}
		return nil, wrapStoreErr(err, "failed to create user", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *userRepository) Get(ctx context.Context, id types.UserID) (*model.User, error) {
	snap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", id))
		}
		return nil, wrapStoreErr(err, "failed to get user", goerr.V("id", id))
	}

	var user model.User
	if err := snap.DataTo(&user); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user", goerr.V("id", id))
	}

	return &user, nil
}

func (r *userRepository) List(ctx context.Context, opts ...interfaces.ListUserOption) ([]*model.User, error) {
	cfg := interfaces.BuildListUserConfig(opts...)

	query := r.client.Collection(r.collection()).Query
	if cfg.Department() != nil {
		query = query.Where("DepartmentID", "==", cfg.Department().String())
	}
	if cfg.ActiveOnly() {
		query = query.Where("IsActive", "==", true)
	}
	query = query.OrderBy("FullName", firestore.Asc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var users []*model.User
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStoreErr(err, "failed to iterate users")
		}

		var user model.User
		if err := snap.DataTo(&user); err != nil {
			return nil, goerr.Wrap(err, "failed to decode user", goerr.V("doc", snap.Ref.ID))
		}
		users = append(users, &user)
	}

	if users == nil {
		users = []*model.User{}
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	docRef := r.client.Collection(r.collection()).Doc(user.ID.String())

	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", user.ID))
		}
		return nil, wrapStoreErr(err, "failed to get user", goerr.V("id", user.ID))
	}

	var existing model.User
	if err := snap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user", goerr.V("id", user.ID))
	}

	updated := *user
	updated.Email = existing.Email // email is immutable
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, wrapStoreErr(err, "failed to update user", goerr.V("id", user.ID))
	}

	return &updated, nil
}

func (r *userRepository) Delete(ctx context.Context, id types.UserID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", id))
		}
		return wrapStoreErr(err, "failed to get user", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return wrapStoreErr(err, "failed to delete user", goerr.V("id", id))
	}

	return nil
}
