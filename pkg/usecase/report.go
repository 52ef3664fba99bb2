package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/model/auth"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

type ReportUseCase struct {
	repo interfaces.Repository
	now  func() time.Time
}

func NewReportUseCase(repo interfaces.Repository, now func() time.Time) *ReportUseCase {
	return &ReportUseCase{
		repo: repo,
		now:  now,
	}
}

// CreateReportRequestInput carries the caller-provided fields for a new
// report request
type CreateReportRequestInput struct {
	Title        string
	Description  string
	DepartmentID types.DepartmentID
	TaskID       *int64
	DueDate      *time.Time
}

// CreateReportRequest asks a department to produce a report. Only leadership
// roles may request reports. A linked task must exist.
func (uc *ReportUseCase) CreateReportRequest(ctx context.Context, input *CreateReportRequestInput) (*model.ReportRequest, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	caps := model.CapabilitiesFor(ident.Role)
	if !caps.CreateReportRequests {
		return nil, goerr.Wrap(ErrForbidden, "role cannot request reports", goerr.V("role", ident.Role))
	}

	if input.Title == "" {
		return nil, model.NewValidationError("report title is required")
	}

	if _, err := uc.repo.Department().Get(ctx, input.DepartmentID); err != nil {
		return nil, goerr.Wrap(ErrDepartmentNotFound, "target department not found",
			goerr.V("department_id", input.DepartmentID))
	}

	if input.TaskID != nil {
		if _, err := uc.repo.Task().Get(ctx, *input.TaskID); err != nil {
			return nil, goerr.Wrap(ErrTaskNotFound, "linked task not found", goerr.V(TaskIDKey, *input.TaskID))
		}
	}

	report := &model.ReportRequest{
		Title:        input.Title,
		Description:  input.Description,
		RequestedBy:  ident.Sub,
		DepartmentID: input.DepartmentID,
		TaskID:       input.TaskID,
		Status:       types.ReportStatusRequested,
		DueDate:      input.DueDate,
	}
	if err := report.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Report().Create(ctx, report)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create report request")
	}

	return created, nil
}

// GetReport returns the report request if it is within the caller's scope
func (uc *ReportUseCase) GetReport(ctx context.Context, id int64) (*model.ReportRequest, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	report, err := uc.repo.Report().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrReportNotFound, "report request not found", goerr.V(ReportIDKey, id))
	}

	caps := model.CapabilitiesFor(ident.Role)
	if !caps.ReportVisible(report, ident.Sub, ident.DepartmentID) {
		return nil, goerr.Wrap(ErrForbidden, "report is outside the caller's scope", goerr.V(ReportIDKey, id))
	}

	return report, nil
}

// ListReports returns report requests within the caller's data scope
func (uc *ReportUseCase) ListReports(ctx context.Context, opts ...interfaces.ListReportOption) ([]*model.ReportRequest, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	caps := model.CapabilitiesFor(ident.Role)
	if caps.ReadAllDepartments {
		reports, err := uc.repo.Report().List(ctx, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list report requests")
		}
		return reports, nil
	}

	byRequester, err := uc.repo.Report().List(ctx, append(opts, interfaces.WithReportRequester(ident.Sub))...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list requested reports")
	}

	var byDepartment []*model.ReportRequest
	if ident.DepartmentID != "" {
		byDepartment, err = uc.repo.Report().List(ctx, append(opts, interfaces.WithReportDepartment(ident.DepartmentID))...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list department reports")
		}
	}

	return mergeReports(byRequester, byDepartment), nil
}

func mergeReports(lists ...[]*model.ReportRequest) []*model.ReportRequest {
	seen := make(map[int64]bool)
	merged := []*model.ReportRequest{}
	for _, list := range lists {
		for _, report := range list {
			if seen[report.ID] {
				continue
			}
			seen[report.ID] = true
			merged = append(merged, report)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].ID > merged[j].ID
		}
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged
}

// StartReport marks a requested report as in progress. Only a submitter
// within the target department may start it.
func (uc *ReportUseCase) StartReport(ctx context.Context, id int64) (*model.ReportRequest, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	report, err := uc.repo.Report().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrReportNotFound, "report request not found", goerr.V(ReportIDKey, id))
	}

	if err := uc.checkSubmitter(ident, report); err != nil {
		return nil, err
	}

	if !report.Status.CanTransitionTo(types.ReportStatusInProgress) {
		return nil, goerr.Wrap(ErrInvalidTransition, "report cannot be started",
			goerr.V(ReportIDKey, id),
			goerr.V("from", report.Status))
	}

	report.Status = types.ReportStatusInProgress
	updated, err := uc.repo.Report().Update(ctx, report)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to start report", goerr.V(ReportIDKey, id))
	}

	return updated, nil
}

// SubmitReport attaches content to a report request and marks it submitted.
// The submission is rejected before any mutation when the content is empty
// or the report is not awaiting submission.
func (uc *ReportUseCase) SubmitReport(ctx context.Context, id int64, content string) (*model.ReportRequest, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	report, err := uc.repo.Report().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrReportNotFound, "report request not found", goerr.V(ReportIDKey, id))
	}

	if err := uc.checkSubmitter(ident, report); err != nil {
		return nil, err
	}

	if !report.Status.CanTransitionTo(types.ReportStatusSubmitted) {
		return nil, goerr.Wrap(ErrInvalidTransition, "report is not awaiting submission",
			goerr.V(ReportIDKey, id),
			goerr.V("from", report.Status))
	}

	if strings.TrimSpace(content) == "" {
		return nil, model.NewValidationError("report content is required")
	}

	submittedAt := uc.now()
	report.Status = types.ReportStatusSubmitted
	report.Content = content
	report.SubmittedBy = ident.Sub
	report.SubmittedAt = &submittedAt

	updated, err := uc.repo.Report().Update(ctx, report)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to submit report", goerr.V(ReportIDKey, id))
	}

	return updated, nil
}

// ReviewReport records an approve/reject decision on a submitted report.
// Only leadership roles may review, and a report can be decided once.
func (uc *ReportUseCase) ReviewReport(ctx context.Context, id int64, decision types.ReportStatus, notes string) (*model.ReportRequest, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	caps := model.CapabilitiesFor(ident.Role)
	if !caps.ReviewReports {
		return nil, goerr.Wrap(ErrForbidden, "role cannot review reports", goerr.V("role", ident.Role))
	}

	if !decision.IsDecision() {
		return nil, model.NewValidationError("review decision must be approved or rejected")
	}

	report, err := uc.repo.Report().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrReportNotFound, "report request not found", goerr.V(ReportIDKey, id))
	}

	if !report.Status.CanTransitionTo(decision) {
		return nil, goerr.Wrap(ErrInvalidTransition, "report is not awaiting review",
			goerr.V(ReportIDKey, id),
			goerr.V("from", report.Status),
			goerr.V("to", decision))
	}

	reviewedAt := uc.now()
	report.Status = decision
	report.ReviewerNotes = notes
	report.ReviewedAt = &reviewedAt

	updated, err := uc.repo.Report().Update(ctx, report)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to review report", goerr.V(ReportIDKey, id))
	}

	return updated, nil
}

func (uc *ReportUseCase) checkSubmitter(ident *auth.Identity, report *model.ReportRequest) error {
	caps := model.CapabilitiesFor(ident.Role)
	if !caps.SubmitReports {
		return goerr.Wrap(ErrForbidden, "role cannot submit reports", goerr.V("role", ident.Role))
	}
	if caps.ReadAllDepartments {
		return nil
	}
	if ident.DepartmentID == "" || ident.DepartmentID != report.DepartmentID {
		return goerr.Wrap(ErrForbidden, "report belongs to another department",
			goerr.V(ReportIDKey, report.ID))
	}
	return nil
}
