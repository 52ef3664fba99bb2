package types

// NotificationType identifies the source record kind of a notification
type NotificationType string

const (
	NotificationTypeTask   NotificationType = "task"
	NotificationTypeReport NotificationType = "report"
)

// IsValid checks if the notification type is valid
func (t NotificationType) IsValid() bool {
	return t == NotificationTypeTask || t == NotificationTypeReport
}

// String returns the string representation of the notification type
func (t NotificationType) String() string {
	return string(t)
}

// NotificationCategory classifies a notification within the feed
type NotificationCategory string

const (
	NotificationCategoryAssignment NotificationCategory = "assignment"
	NotificationCategoryRequest    NotificationCategory = "request"
	NotificationCategorySubmission NotificationCategory = "submission"
)

// IsValid checks if the notification category is valid
func (c NotificationCategory) IsValid() bool {
	switch c {
	case NotificationCategoryAssignment,
		NotificationCategoryRequest,
		NotificationCategorySubmission:
		return true
	default:
		return false
	}
}

// String returns the string representation of the notification category
func (c NotificationCategory) String() string {
	return string(c)
}
