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

type reportRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newReportRepository(client *firestore.Client) *reportRepository {
	return &reportRepository{client: client}
}

func (r *reportRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_task_reports"
	}
	return "task_reports"
}

func (r *reportRepository) counterCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func (r *reportRepository) Create(ctx context.Context, report *model.ReportRequest) (*model.ReportRequest, error) {
	id, err := nextID(ctx, r.client, r.counterCollection(), "report_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *report
	created.ID = id
	created.Status = created.Status.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	docID := fmt.Sprintf("%d", created.ID)
	if _, err := r.client.Collection(r.collection()).Doc(docID).Set(ctx, &created); err != nil {
		return nil, wrapStoreErr(err, "failed to create report", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *reportRepository) Get(ctx context.Context, id int64) (*model.ReportRequest, error) {
	docID := fmt.Sprintf("%d", id)
	snap, err := r.client.Collection(r.collection()).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "report not found", goerr.V("id", id))
		}
		return nil, wrapStoreErr(err, "failed to get report", goerr.V("id", id))
	}

	var report model.ReportRequest
	if err := snap.DataTo(&report); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report", goerr.V("id", id))
	}

	return &report, nil
}

func (r *reportRepository) List(ctx context.Context, opts ...interfaces.ListReportOption) ([]*model.ReportRequest, error) {
	cfg := interfaces.BuildListReportConfig(opts...)

	query := r.client.Collection(r.collection()).Query
	if cfg.Status() != nil {
		query = query.Where("Status", "==", cfg.Status().String())
	}
	if cfg.Department() != nil {
		query = query.Where("DepartmentID", "==", cfg.Department().String())
	}
	if cfg.RequestedBy() != nil {
		query = query.Where("RequestedBy", "==", cfg.RequestedBy().String())
	}
	query = query.OrderBy("CreatedAt", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var reports []*model.ReportRequest
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStoreErr(err, "failed to iterate reports")
		}

		var report model.ReportRequest
		if err := snap.DataTo(&report); err != nil {
			return nil, goerr.Wrap(err, "failed to decode report", goerr.V("doc", snap.Ref.ID))
		}
		reports = append(reports, &report)
	}

	if reports == nil {
		reports = []*model.ReportRequest{}
	}
	return reports, nil
}

func (r *reportRepository) Update(ctx context.Context, report *model.ReportRequest) (*model.ReportRequest, error) {
	docID := fmt.Sprintf("%d", report.ID)
	docRef := r.client.Collection(r.collection()).Doc(docID)

	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "report not found", goerr.V("id", report.ID))
		}
		return nil, wrapStoreErr(err, "failed to get report", goerr.V("id", report.ID))
	}

	var existing model.ReportRequest
	if err := snap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report", goerr.V("id", report.ID))
	}

	updated := *report
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, wrapStoreErr(err, "failed to update report", goerr.V("id", report.ID))
	}

	return &updated, nil
}

func (r *reportRepository) Delete(ctx context.Context, id int64) error {
	docID := fmt.Sprintf("%d", id)
	docRef := r.client.Collection(r.collection()).Doc(docID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "report not found", goerr.V("id", id))
		}
		return wrapStoreErr(err, "failed to get report", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return wrapStoreErr(err, "failed to delete report", goerr.V("id", id))
	}

	return nil
}
