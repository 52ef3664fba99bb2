package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrTaskNotFound       = errors.New("task not found")
	ErrReportNotFound     = errors.New("report request not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrMinistryNotFound   = errors.New("ministry not found")

	// Workflow errors
	ErrInvalidTransition = errors.New("invalid status transition")

	// Access control errors
	ErrForbidden = errors.New("operation not permitted for role")
)

// Context keys for error values
const (
	TaskIDKey   = "task_id"
	ReportIDKey = "report_id"
	UserIDKey   = "user_id"
)
