package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/model/auth"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// NotificationUseCase assembles the notification feed. Notifications are a
// projection over tasks and report requests and are never stored.
type NotificationUseCase struct {
	repo interfaces.Repository
	now  func() time.Time
}

func NewNotificationUseCase(repo interfaces.Repository, now func() time.Time) *NotificationUseCase {
	return &NotificationUseCase{
		repo: repo,
		now:  now,
	}
}

// ListNotifications builds the caller's feed: role-scoped tasks and report
// requests are fetched concurrently, projected into notifications with
// resolved sender names, merged newest-first, then filtered.
func (uc *NotificationUseCase) ListNotifications(ctx context.Context, filter *model.NotificationFilter) ([]model.Notification, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	caps := model.CapabilitiesFor(ident.Role)

	var tasks []*model.Task
	var reports []*model.ReportRequest
	var users []*model.User

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		tasks, err = uc.fetchTasks(egCtx, ident, caps)
		return err
	})
	eg.Go(func() error {
		var err error
		reports, err = uc.fetchReports(egCtx, ident, caps)
		return err
	})
	eg.Go(func() error {
		var err error
		users, err = uc.repo.User().List(egCtx)
		if err != nil {
			return goerr.Wrap(err, "failed to list users for sender resolution")
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	names := make(map[types.UserID]string, len(users))
	for _, user := range users {
		names[user.ID] = user.FullName
	}

	now := uc.now()
	feed := make([]model.Notification, 0, len(tasks)+len(reports))
	for _, task := range tasks {
		feed = append(feed, model.NotificationFromTask(task, names[task.AssignedBy]))
	}
	for _, report := range reports {
		feed = append(feed, model.NotificationFromReport(report, names[report.RequestedBy], now))
	}

	model.SortNotifications(feed)
	return model.FilterNotifications(feed, filter), nil
}

func (uc *NotificationUseCase) fetchTasks(ctx context.Context, ident *auth.Identity, caps model.Capabilities) ([]*model.Task, error) {
	if caps.ReadAllDepartments {
		tasks, err := uc.repo.Task().List(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list tasks for feed")
		}
		return tasks, nil
	}

	byAssignee, err := uc.repo.Task().List(ctx, interfaces.WithTaskAssignee(ident.Sub))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assigned tasks for feed")
	}

	var byDepartment []*model.Task
	if ident.DepartmentID != "" {
		byDepartment, err = uc.repo.Task().List(ctx, interfaces.WithTaskDepartment(ident.DepartmentID))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list department tasks for feed")
		}
	}

	return mergeTasks(byAssignee, byDepartment), nil
}

func (uc *NotificationUseCase) fetchReports(ctx context.Context, ident *auth.Identity, caps model.Capabilities) ([]*model.ReportRequest, error) {
	if caps.ReadAllDepartments {
		reports, err := uc.repo.Report().List(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list reports for feed")
		}
		return reports, nil
	}

	byRequester, err := uc.repo.Report().List(ctx, interfaces.WithReportRequester(ident.Sub))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list requested reports for feed")
	}

	var byDepartment []*model.ReportRequest
	if ident.DepartmentID != "" {
		byDepartment, err = uc.repo.Report().List(ctx, interfaces.WithReportDepartment(ident.DepartmentID))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list department reports for feed")
		}
	}

	return mergeReports(byRequester, byDepartment), nil
}
