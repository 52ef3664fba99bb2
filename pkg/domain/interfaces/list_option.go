package interfaces

import (
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// ListTaskOption is a functional option for filtering tasks in List.
// Options are conjunctive: every set predicate must hold.
type ListTaskOption func(*listTaskConfig)

type listTaskConfig struct {
	status     *types.TaskStatus
	department *types.DepartmentID
	assignedTo *types.UserID
}

// WithTaskStatus filters tasks by status
func WithTaskStatus(status types.TaskStatus) ListTaskOption {
	return func(c *listTaskConfig) {
		c.status = &status
	}
}

// WithTaskDepartment filters tasks by target department
func WithTaskDepartment(id types.DepartmentID) ListTaskOption {
	return func(c *listTaskConfig) {
		c.department = &id
	}
}

// WithTaskAssignee filters tasks by direct assignee
func WithTaskAssignee(id types.UserID) ListTaskOption {
	return func(c *listTaskConfig) {
		c.assignedTo = &id
	}
}

// BuildListTaskConfig builds a listTaskConfig from options
func BuildListTaskConfig(opts ...ListTaskOption) *listTaskConfig {
	cfg := &listTaskConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Status returns the status filter value, or nil if not set
func (c *listTaskConfig) Status() *types.TaskStatus {
	return c.status
}

// Department returns the department filter value, or nil if not set
func (c *listTaskConfig) Department() *types.DepartmentID {
	return c.department
}

// AssignedTo returns the assignee filter value, or nil if not set
func (c *listTaskConfig) AssignedTo() *types.UserID {
	return c.assignedTo
}

// ListReportOption is a functional option for filtering report requests in List
type ListReportOption func(*listReportConfig)

type listReportConfig struct {
	status      *types.ReportStatus
	department  *types.DepartmentID
	requestedBy *types.UserID
}

// WithReportStatus filters report requests by status
func WithReportStatus(status types.ReportStatus) ListReportOption {
	return func(c *listReportConfig) {
		c.status = &status
	}
}

// WithReportDepartment filters report requests by department
func WithReportDepartment(id types.DepartmentID) ListReportOption {
	return func(c *listReportConfig) {
		c.department = &id
	}
}

// WithReportRequester filters report requests by requesting user
func WithReportRequester(id types.UserID) ListReportOption {
	return func(c *listReportConfig) {
		c.requestedBy = &id
	}
}

// BuildListReportConfig builds a listReportConfig from options
func BuildListReportConfig(opts ...ListReportOption) *listReportConfig {
	cfg := &listReportConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Status returns the status filter value, or nil if not set
func (c *listReportConfig) Status() *types.ReportStatus {
	return c.status
}

// Department returns the department filter value, or nil if not set
func (c *listReportConfig) Department() *types.DepartmentID {
	return c.department
}

// RequestedBy returns the requester filter value, or nil if not set
func (c *listReportConfig) RequestedBy() *types.UserID {
	return c.requestedBy
}

// ListUserOption is a functional option for filtering user profiles in List
type ListUserOption func(*listUserConfig)

type listUserConfig struct {
	department *types.DepartmentID
	activeOnly bool
}

// WithUserDepartment filters users by department
func WithUserDepartment(id types.DepartmentID) ListUserOption {
	return func(c *listUserConfig) {
		c.department = &id
	}
}

// WithActiveUsersOnly restricts the list to active users
func WithActiveUsersOnly() ListUserOption {
	return func(c *listUserConfig) {
		c.activeOnly = true
	}
}

// BuildListUserConfig builds a listUserConfig from options
func BuildListUserConfig(opts ...ListUserOption) *listUserConfig {
	cfg := &listUserConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Department returns the department filter value, or nil if not set
func (c *listUserConfig) Department() *types.DepartmentID {
	return c.department
}

// ActiveOnly reports whether only active users should be listed
func (c *listUserConfig) ActiveOnly() bool {
	return c.activeOnly
}
