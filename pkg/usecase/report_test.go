package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
	"github.com/govops-lab/ministrydesk/pkg/usecase"
)

func createReport(t *testing.T, uc *usecase.UseCases, repo interfaces.Repository) *model.ReportRequest {
	t.Helper()
	created, err := uc.Report.CreateReportRequest(asUser(t, repo, "user-dg"), &usecase.CreateReportRequestInput{
		Title:        "Quarterly spending report",
		Description:  "Breakdown of Q2 spending",
		DepartmentID: financeDept,
	})
	gt.NoError(t, err).Required()
	return created
}

func TestCreateReportRequest(t *testing.T) {
	t.Run("leadership can request a report", func(t *testing.T) {
		uc, repo := setup(t)

		created := createReport(t, uc, repo)
		gt.Value(t, created.Status).Equal(types.ReportStatusRequested)
		gt.Value(t, created.RequestedBy).Equal(types.UserID("user-dg"))
		gt.Value(t, created.SubmittedAt).Nil()
	})

	t.Run("department user cannot request reports", func(t *testing.T) {
		uc, repo := setup(t)

		_, err := uc.Report.CreateReportRequest(asUser(t, repo, "user-finance"), &usecase.CreateReportRequestInput{
			Title:        "Unauthorized request",
			DepartmentID: financeDept,
		})
		gt.Error(t, err).Is(usecase.ErrForbidden)
	})

	t.Run("linked task must exist", func(t *testing.T) {
		uc, repo := setup(t)

		missing := int64(12345)
		_, err := uc.Report.CreateReportRequest(asUser(t, repo, "user-dg"), &usecase.CreateReportRequestInput{
			Title:        "Report for missing task",
			DepartmentID: financeDept,
			TaskID:       &missing,
		})
		gt.Error(t, err).Is(usecase.ErrTaskNotFound)
	})

	t.Run("report linked to an existing task", func(t *testing.T) {
		uc, repo := setup(t)

		task, err := uc.Task.CreateTask(asUser(t, repo, "user-dg"), &usecase.CreateTaskInput{
			Title:        "Underlying task",
			DepartmentID: financeDept,
		})
		gt.NoError(t, err).Required()

		created, err := uc.Report.CreateReportRequest(asUser(t, repo, "user-dg"), &usecase.CreateReportRequestInput{
			Title:        "Linked report",
			DepartmentID: financeDept,
			TaskID:       &task.ID,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, *created.TaskID).Equal(task.ID)
	})
}

func TestSubmitReport(t *testing.T) {
	t.Run("department member submits with content", func(t *testing.T) {
		uc, repo := setup(t)
		report := createReport(t, uc, repo)

		submitted, err := uc.Report.SubmitReport(asUser(t, repo, "user-finance"), report.ID, "All spending within budget.")
		gt.NoError(t, err).Required()

		gt.Value(t, submitted.Status).Equal(types.ReportStatusSubmitted)
		gt.Value(t, submitted.Content).Equal("All spending within budget.")
		gt.Value(t, submitted.SubmittedBy).Equal(types.UserID("user-finance"))
		gt.Value(t, submitted.SubmittedAt).NotNil()
		gt.Bool(t, submitted.SubmittedAt.Equal(testClock())).True()
	})

	t.Run("submission after start works", func(t *testing.T) {
		uc, repo := setup(t)
		report := createReport(t, uc, repo)
		ctx := asUser(t, repo, "user-finance")

		started, err := uc.Report.StartReport(ctx, report.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, started.Status).Equal(types.ReportStatusInProgress)

		submitted, err := uc.Report.SubmitReport(ctx, report.ID, "Done.")
		gt.NoError(t, err).Required()
		gt.Value(t, submitted.Status).Equal(types.ReportStatusSubmitted)
	})

	t.Run("whitespace content is rejected without mutation", func(t *testing.T) {
		uc, repo := setup(t)
		report := createReport(t, uc, repo)

		_, err := uc.Report.SubmitReport(asUser(t, repo, "user-finance"), report.ID, "   \n\t ")
		gt.Error(t, err).Is(model.ErrValidation)

		current, err := repo.Report().Get(context.Background(), report.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, current.Status).Equal(types.ReportStatusRequested)
		gt.Value(t, current.SubmittedAt).Nil()
		gt.Value(t, current.Content).Equal("")
	})

	t.Run("member of another department cannot submit", func(t *testing.T) {
		uc, repo := setup(t)
		report := createReport(t, uc, repo)

		_, err := uc.Report.SubmitReport(asUser(t, repo, "user-health"), report.ID, "Not my report.")
		gt.Error(t, err).Is(usecase.ErrForbidden)
	})

	t.Run("leadership without submit capability cannot submit", func(t *testing.T) {
		uc, repo := setup(t)
		report := createReport(t, uc, repo)

		_, err := uc.Report.SubmitReport(asUser(t, repo, "user-dg"), report.ID, "DG content.")
		gt.Error(t, err).Is(usecase.ErrForbidden)
	})

	t.Run("double submission is rejected", func(t *testing.T) {
		uc, repo := setup(t)
		report := createReport(t, uc, repo)
		ctx := asUser(t, repo, "user-finance")

		_, err := uc.Report.SubmitReport(ctx, report.ID, "First.")
		gt.NoError(t, err).Required()

		_, err = uc.Report.SubmitReport(ctx, report.ID, "Second.")
		gt.Error(t, err).Is(usecase.ErrInvalidTransition)
	})
}

func TestReviewReport(t *testing.T) {
	submit := func(t *testing.T, uc *usecase.UseCases, repo interfaces.Repository) *model.ReportRequest {
		t.Helper()
		report := createReport(t, uc, repo)
		submitted, err := uc.Report.SubmitReport(asUser(t, repo, "user-finance"), report.ID, "Findings attached.")
		gt.NoError(t, err).Required()
		return submitted
	}

	t.Run("leadership approves a submitted report", func(t *testing.T) {
		uc, repo := setup(t)
		report := submit(t, uc, repo)

		approved, err := uc.Report.ReviewReport(asUser(t, repo, "user-minister"), report.ID, types.ReportStatusApproved, "Well done.")
		gt.NoError(t, err).Required()

		gt.Value(t, approved.Status).Equal(types.ReportStatusApproved)
		gt.Value(t, approved.ReviewerNotes).Equal("Well done.")
		gt.Value(t, approved.ReviewedAt).NotNil()
	})

	t.Run("leadership rejects a submitted report", func(t *testing.T) {
		uc, repo := setup(t)
		report := submit(t, uc, repo)

		rejected, err := uc.Report.ReviewReport(asUser(t, repo, "user-dg"), report.ID, types.ReportStatusRejected, "Numbers missing.")
		gt.NoError(t, err).Required()
		gt.Value(t, rejected.Status).Equal(types.ReportStatusRejected)
	})

	t.Run("department user cannot review", func(t *testing.T) {
		uc, repo := setup(t)
		report := submit(t, uc, repo)

		_, err := uc.Report.ReviewReport(asUser(t, repo, "user-finance"), report.ID, types.ReportStatusApproved, "")
		gt.Error(t, err).Is(usecase.ErrForbidden)
	})

	t.Run("unsubmitted report cannot be reviewed", func(t *testing.T) {
		uc, repo := setup(t)
		report := createReport(t, uc, repo)

		_, err := uc.Report.ReviewReport(asUser(t, repo, "user-dg"), report.ID, types.ReportStatusApproved, "")
		gt.Error(t, err).Is(usecase.ErrInvalidTransition)
	})

	t.Run("decision must be approve or reject", func(t *testing.T) {
		uc, repo := setup(t)
		report := submit(t, uc, repo)

		_, err := uc.Report.ReviewReport(asUser(t, repo, "user-dg"), report.ID, types.ReportStatusInProgress, "")
		gt.Error(t, err).Is(model.ErrValidation)
	})

	t.Run("second review is rejected", func(t *testing.T) {
		uc, repo := setup(t)
		report := submit(t, uc, repo)
		ctx := asUser(t, repo, "user-dg")

		_, err := uc.Report.ReviewReport(ctx, report.ID, types.ReportStatusApproved, "")
		gt.NoError(t, err).Required()

		_, err = uc.Report.ReviewReport(ctx, report.ID, types.ReportStatusRejected, "")
		gt.Error(t, err).Is(usecase.ErrInvalidTransition)
	})
}

func TestListReports(t *testing.T) {
	t.Run("department user sees own department reports only", func(t *testing.T) {
		uc, repo := setup(t)
		ctxDG := asUser(t, repo, "user-dg")

		for _, in := range []*usecase.CreateReportRequestInput{
			{Title: "Finance report", DepartmentID: financeDept},
			{Title: "Health report", DepartmentID: healthDept},
		} {
			_, err := uc.Report.CreateReportRequest(ctxDG, in)
			gt.NoError(t, err).Required()
		}

		reports, err := uc.Report.ListReports(asUser(t, repo, "user-finance"))
		gt.NoError(t, err).Required()
		gt.Number(t, len(reports)).Equal(1)
		gt.Value(t, reports[0].Title).Equal("Finance report")

		all, err := uc.Report.ListReports(ctxDG)
		gt.NoError(t, err).Required()
		gt.Number(t, len(all)).Equal(2)
	})
}
