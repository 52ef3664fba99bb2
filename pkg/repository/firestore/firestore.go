package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore is the production repository backed by Cloud Firestore
type Firestore struct {
	client     *firestore.Client
	task       *taskRepository
	report     *reportRepository
	department *departmentRepository
	user       *userRepository
	ministry   *ministryRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, mainly for tests sharing
// a project.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.task.collectionPrefix = prefix
		f.report.collectionPrefix = prefix
		f.department.collectionPrefix = prefix
		f.user.collectionPrefix = prefix
		f.ministry.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:     client,
		task:       newTaskRepository(client),
		report:     newReportRepository(client),
		department: newDepartmentRepository(client),
		user:       newUserRepository(client),
		ministry:   newMinistryRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Task() interfaces.TaskRepository {
	return f.task
}

func (f *Firestore) Report() interfaces.ReportRepository {
	return f.report
}

func (f *Firestore) Department() interfaces.DepartmentRepository {
	return f.department
}

func (f *Firestore) User() interfaces.UserRepository {
	return f.user
}

func (f *Firestore) Ministry() interfaces.MinistryRepository {
	return f.ministry
}

func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}

// wrapStoreErr maps gRPC status codes onto the repository error taxonomy so
// callers can discriminate transient failures from integrity violations.
func wrapStoreErr(err error, msg string, values ...goerr.Option) error {
	switch status.Code(err) {
	case codes.NotFound:
		return goerr.Wrap(ErrNotFound, msg, values...)
	case codes.AlreadyExists:
		return goerr.Wrap(ErrAlreadyExists, msg, values...)
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return goerr.Wrap(ErrUnavailable, msg, values...)
	default:
		return goerr.Wrap(err, msg, values...)
	}
}
