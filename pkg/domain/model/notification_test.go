package model_test

import (
	"testing"
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestNotificationFromTask(t *testing.T) {
	created := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	t.Run("pending task is unread assignment", func(t *testing.T) {
		task := &model.Task{
			ID:          42,
			Title:       "Prepare budget",
			Description: "Q3 budget draft",
			Priority:    types.PriorityHigh,
			Status:      types.TaskStatusPending,
			CreatedAt:   created,
		}

		n := model.NotificationFromTask(task, "Amina Diallo")
		gt.Value(t, n.ID).Equal("task-42")
		gt.Value(t, n.Type).Equal(types.NotificationTypeTask)
		gt.Value(t, n.Category).Equal(types.NotificationCategoryAssignment)
		gt.Value(t, n.Message).Equal("Prepare budget")
		gt.Value(t, n.Priority).Equal(types.PriorityHigh)
		gt.Value(t, n.Sender).Equal("Amina Diallo")
		gt.Value(t, n.Timestamp).Equal(created)
		gt.Bool(t, n.Read).False()
	})

	t.Run("started task is read", func(t *testing.T) {
		task := &model.Task{ID: 7, Title: "t", Status: types.TaskStatusInProgress, CreatedAt: created}
		n := model.NotificationFromTask(task, "")
		gt.Bool(t, n.Read).True()
		gt.Value(t, n.Sender).Equal(model.DefaultSender)
	})
}

func TestNotificationFromReport(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	created := now.AddDate(0, 0, -3)

	t.Run("requested report is unread request with derived priority", func(t *testing.T) {
		due := now.AddDate(0, 0, 1)
		report := &model.ReportRequest{
			ID:        3,
			Title:     "Monthly summary",
			Status:    types.ReportStatusRequested,
			DueDate:   &due,
			CreatedAt: created,
		}

		n := model.NotificationFromReport(report, "Joseph Okonkwo", now)
		gt.Value(t, n.ID).Equal("report-3")
		gt.Value(t, n.Category).Equal(types.NotificationCategoryRequest)
		gt.Value(t, n.Title).Equal("Report Request")
		gt.Value(t, n.Priority).Equal(types.PriorityHigh)
		gt.Value(t, n.Timestamp).Equal(created)
		gt.Bool(t, n.Read).False()
	})

	t.Run("submitted report is submission timestamped by submission", func(t *testing.T) {
		submitted := now.AddDate(0, 0, -1)
		report := &model.ReportRequest{
			ID:          4,
			Title:       "Audit findings",
			Status:      types.ReportStatusSubmitted,
			SubmittedAt: &submitted,
			CreatedAt:   created,
		}

		n := model.NotificationFromReport(report, "", now)
		gt.Value(t, n.Category).Equal(types.NotificationCategorySubmission)
		gt.Value(t, n.Title).Equal("Report Submitted")
		gt.Value(t, n.Timestamp).Equal(submitted)
		gt.Bool(t, n.Read).True()
	})

	t.Run("no due date derives medium priority", func(t *testing.T) {
		report := &model.ReportRequest{ID: 5, Title: "r", Status: types.ReportStatusRequested, CreatedAt: created}
		n := model.NotificationFromReport(report, "", now)
		gt.Value(t, n.Priority).Equal(types.PriorityMedium)
	})
}

func TestSortNotifications(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	feed := []model.Notification{
		{ID: "a", Timestamp: base.Add(1 * time.Hour)},
		{ID: "b", Timestamp: base.Add(3 * time.Hour)},
		{ID: "c", Timestamp: base.Add(2 * time.Hour)},
		{ID: "d", Timestamp: base.Add(3 * time.Hour)}, // tie with b
	}

	model.SortNotifications(feed)

	gt.Value(t, feed[0].ID).Equal("b")
	gt.Value(t, feed[1].ID).Equal("d") // stable: insertion order kept on tie
	gt.Value(t, feed[2].ID).Equal("c")
	gt.Value(t, feed[3].ID).Equal("a")

	for i := 1; i < len(feed); i++ {
		gt.Bool(t, feed[i].Timestamp.After(feed[i-1].Timestamp)).False()
	}
}

func TestFilterNotifications(t *testing.T) {
	feed := []model.Notification{
		{ID: "task-1", Type: types.NotificationTypeTask, Category: types.NotificationCategoryAssignment, Priority: types.PriorityHigh, Title: "New Task Assignment", Message: "Fix water supply", Read: false},
		{ID: "report-1", Type: types.NotificationTypeReport, Category: types.NotificationCategoryRequest, Priority: types.PriorityMedium, Title: "Report Request", Message: "Q1 results", Read: true},
		{ID: "report-2", Type: types.NotificationTypeReport, Category: types.NotificationCategorySubmission, Priority: types.PriorityUrgent, Title: "Report Submitted", Message: "Road census", Description: "Census of rural roads", Read: false},
	}

	t.Run("nil filter returns everything", func(t *testing.T) {
		got := model.FilterNotifications(feed, nil)
		gt.Array(t, got).Length(3)
	})

	t.Run("filter by type", func(t *testing.T) {
		got := model.FilterNotifications(feed, &model.NotificationFilter{Type: types.NotificationTypeReport})
		gt.Array(t, got).Length(2)
	})

	t.Run("filter by priority", func(t *testing.T) {
		got := model.FilterNotifications(feed, &model.NotificationFilter{Priority: types.PriorityUrgent})
		gt.Array(t, got).Length(1)
		gt.Value(t, got[0].ID).Equal("report-2")
	})

	t.Run("unread filter returns exactly the unread subset", func(t *testing.T) {
		unread := false
		got := model.FilterNotifications(feed, &model.NotificationFilter{Read: &unread})
		gt.Array(t, got).Length(2)
		for _, n := range got {
			gt.Bool(t, n.Read).False()
		}
	})

	t.Run("search is case-insensitive over title, message and description", func(t *testing.T) {
		got := model.FilterNotifications(feed, &model.NotificationFilter{Search: "WATER"})
		gt.Array(t, got).Length(1)
		gt.Value(t, got[0].ID).Equal("task-1")

		got = model.FilterNotifications(feed, &model.NotificationFilter{Search: "rural"})
		gt.Array(t, got).Length(1)
		gt.Value(t, got[0].ID).Equal("report-2")
	})

	t.Run("conjunction of predicates", func(t *testing.T) {
		unread := false
		got := model.FilterNotifications(feed, &model.NotificationFilter{
			Type: types.NotificationTypeReport,
			Read: &unread,
		})
		gt.Array(t, got).Length(1)
		gt.Value(t, got[0].ID).Equal("report-2")
	})

	t.Run("filtering does not mutate the input", func(t *testing.T) {
		before := len(feed)
		_ = model.FilterNotifications(feed, &model.NotificationFilter{Search: "nothing-matches"})
		gt.Number(t, len(feed)).Equal(before)
		gt.Value(t, feed[0].ID).Equal("task-1")
	})
}
