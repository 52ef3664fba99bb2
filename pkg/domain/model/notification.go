package model

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// Notification is a derived view over tasks and report requests. It is never
// persisted: the feed is recomputed from source records on each fetch.
type Notification struct {
	ID          string // "task-<id>" or "report-<id>"
	Type        types.NotificationType
	Category    types.NotificationCategory
	Title       string
	Message     string
	Description string
	Priority    types.Priority
	Status      string
	Sender      string // Full name of the assigner/requester, "System" if unknown
	Timestamp   time.Time
	DueDate     *time.Time
	Read        bool
}

// DefaultSender is used when the originating user profile cannot be resolved
const DefaultSender = "System"

// NotificationFromTask projects a task into an assignment notification.
// sender is the resolved full name of the assigning user, or empty.
func NotificationFromTask(task *Task, sender string) Notification {
	if sender == "" {
		sender = DefaultSender
	}
	return Notification{
		ID:          fmt.Sprintf("task-%d", task.ID),
		Type:        types.NotificationTypeTask,
		Category:    types.NotificationCategoryAssignment,
		Title:       "New Task Assignment",
		Message:     task.Title,
		Description: task.Description,
		Priority:    task.Priority.Normalize(),
		Status:      task.Status.String(),
		Sender:      sender,
		Timestamp:   task.CreatedAt,
		DueDate:     task.DueDate,
		Read:        task.Status != types.TaskStatusPending,
	}
}

// NotificationFromReport projects a report request into a notification.
// Submitted reports appear as submissions timestamped by submission time;
// everything else appears as a request timestamped by creation time. Reports
// carry no explicit priority, so the urgency tier is derived from the due
// date relative to now.
func NotificationFromReport(report *ReportRequest, sender string, now time.Time) Notification {
	if sender == "" {
		sender = DefaultSender
	}

	n := Notification{
		ID:          fmt.Sprintf("report-%d", report.ID),
		Type:        types.NotificationTypeReport,
		Category:    types.NotificationCategoryRequest,
		Title:       "Report Request",
		Message:     report.Title,
		Description: report.Description,
		Priority:    DerivePriority(now, report.DueDate),
		Status:      report.Status.String(),
		Sender:      sender,
		Timestamp:   report.CreatedAt,
		DueDate:     report.DueDate,
		Read:        report.Status != types.ReportStatusRequested,
	}

	if report.IsSubmission() {
		n.Category = types.NotificationCategorySubmission
		n.Title = "Report Submitted"
		n.Timestamp = *report.SubmittedAt
	}

	return n
}

// SortNotifications orders the feed by timestamp descending. The sort is
// stable so ties keep insertion order.
func SortNotifications(feed []Notification) {
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})
}

// NotificationFilter is a conjunction of predicates applied to the feed
// after aggregation. Zero values mean "no constraint".
type NotificationFilter struct {
	Type     types.NotificationType
	Priority types.Priority
	Category types.NotificationCategory
	Status   string // status value of the underlying record
	Read     *bool  // nil = all, true = read only, false = unread only
	Search   string // case-insensitive substring over title/message/description
}

// Matches reports whether the notification satisfies every set predicate
func (f *NotificationFilter) Matches(n *Notification) bool {
	if f.Type != "" && n.Type != f.Type {
		return false
	}
	if f.Priority != "" && n.Priority != f.Priority {
		return false
	}
	if f.Category != "" && n.Category != f.Category {
		return false
	}
	if f.Status != "" && n.Status != f.Status {
		return false
	}
	if f.Read != nil && n.Read != *f.Read {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(n.Title), needle) &&
			!strings.Contains(strings.ToLower(n.Message), needle) &&
			!strings.Contains(strings.ToLower(n.Description), needle) {
			return false
		}
	}
	return true
}

// FilterNotifications returns the subset of the feed matching the filter.
// The input slice is never mutated.
func FilterNotifications(feed []Notification, filter *NotificationFilter) []Notification {
	if filter == nil {
		return feed
	}
	result := make([]Notification, 0, len(feed))
	for i := range feed {
		if filter.Matches(&feed[i]) {
			result = append(result, feed[i])
		}
	}
	return result
}
