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

type reportRepository struct {
	mu      sync.RWMutex
	reports map[int64]*model.ReportRequest
	nextID  int64
}

func newReportRepository() *reportRepository {
	return &reportRepository{
		reports: make(map[int64]*model.ReportRequest),
		nextID:  1,
	}
}

// copyReport creates a deep copy of a report request
func copyReport(r *model.ReportRequest) *model.ReportRequest {
	copied := *r
	if r.TaskID != nil {
		taskID := *r.TaskID
		copied.TaskID = &taskID
	}
	if r.DueDate != nil {
		due := *r.DueDate
		copied.DueDate = &due
	}
	if r.SubmittedAt != nil {
		submitted := *r.SubmittedAt
		copied.SubmittedAt = &submitted
	}
	if r.ReviewedAt != nil {
		reviewed := *r.ReviewedAt
		copied.ReviewedAt = &reviewed
	}
	return &copied
}

func (r *reportRepository) Create(ctx context.Context, report *model.ReportRequest) (*model.ReportRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyReport(report)
	created.ID = r.nextID
	created.Status = created.Status.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.reports[created.ID] = created
	return copyReport(created), nil
}

func (r *reportRepository) Get(ctx context.Context, id int64) (*model.ReportRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, exists := r.reports[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "report not found", goerr.V("id", id))
	}

	return copyReport(report), nil
}

func (r *reportRepository) List(ctx context.Context, opts ...interfaces.ListReportOption) ([]*model.ReportRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg := interfaces.BuildListReportConfig(opts...)

	reports := make([]*model.ReportRequest, 0, len(r.reports))
	for _, report := range r.reports {
		if cfg.Status() != nil && report.Status != *cfg.Status() {
			continue
		}
		if cfg.Department() != nil && report.DepartmentID != *cfg.Department() {
			continue
		}
		if cfg.RequestedBy() != nil && report.RequestedBy != *cfg.RequestedBy() {
			continue
		}
		reports = append(reports, copyReport(report))
	}

	sort.Slice(reports, func(i, j int) bool {
		if reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].ID > reports[j].ID
		}
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	return reports, nil
}

func (r *reportRepository) Update(ctx context.Context, report *model.ReportRequest) (*model.ReportRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.reports[report.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "report not found", goerr.V("id", report.ID))
	}

	updated := copyReport(report)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.reports[updated.ID] = updated
	return copyReport(updated), nil
}

func (r *reportRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reports[id]; !exists {
		return goerr.Wrap(ErrNotFound, "report not found", goerr.V("id", id))
	}

	delete(r.reports, id)
	return nil
}
