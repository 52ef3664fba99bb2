package interfaces

import (
	"context"

	"github.com/govops-lab/ministrydesk/pkg/domain/model"
)

// ReportRepository defines the interface for ReportRequest data access
type ReportRepository interface {
	// Create creates a new report request with auto-generated ID
	Create(ctx context.Context, report *model.ReportRequest) (*model.ReportRequest, error)

	// Get retrieves a report request by ID
	Get(ctx context.Context, id int64) (*model.ReportRequest, error)

	// List retrieves report requests with optional conjunctive filtering, newest first
	List(ctx context.Context, opts ...ListReportOption) ([]*model.ReportRequest, error)

	// Update updates an existing report request
	Update(ctx context.Context, report *model.ReportRequest) (*model.ReportRequest, error)

	// Delete deletes a report request by ID
	Delete(ctx context.Context, id int64) error
}
