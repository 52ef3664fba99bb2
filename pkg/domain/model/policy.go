package model

import (
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// Capabilities is the explicit capability set resolved from a role. Every
// operation consults the same set, so UI gating and data-layer gating cannot
// drift apart.
type Capabilities struct {
	ReadAllDepartments   bool // See tasks/reports of every department
	CreateTasks          bool
	CreateReportRequests bool
	SubmitReports        bool
	ReviewReports        bool
	CancelAnyTask        bool // Cancel tasks regardless of assignee
	ManageUsers          bool
	ManageDepartments    bool
	ManageMinistries     bool
}

// CapabilitiesFor resolves a role into its capability set
func CapabilitiesFor(role types.Role) Capabilities {
	switch role {
	case types.RoleAdmin:
		return Capabilities{
			ReadAllDepartments:   true,
			CreateTasks:          true,
			CreateReportRequests: true,
			SubmitReports:        true,
			ReviewReports:        true,
			CancelAnyTask:        true,
			ManageUsers:          true,
			ManageDepartments:    true,
			ManageMinistries:     true,
		}
	case types.RoleDG, types.RoleMinister:
		return Capabilities{
			ReadAllDepartments:   true,
			CreateTasks:          true,
			CreateReportRequests: true,
			ReviewReports:        true,
			CancelAnyTask:        true,
		}
	case types.RoleDepartmentUser:
		return Capabilities{
			SubmitReports: true,
		}
	default:
		return Capabilities{}
	}
}

// TaskVisible reports whether a task is within the viewer's data scope.
// Department users see tasks assigned to them or to their department;
// leadership sees everything.
func (c Capabilities) TaskVisible(task *Task, viewer types.UserID, department types.DepartmentID) bool {
	if c.ReadAllDepartments {
		return true
	}
	if task.AssignedTo != "" && task.AssignedTo == viewer {
		return true
	}
	return department != "" && task.DepartmentID == department
}

// ReportVisible reports whether a report request is within the viewer's
// data scope.
func (c Capabilities) ReportVisible(report *ReportRequest, viewer types.UserID, department types.DepartmentID) bool {
	if c.ReadAllDepartments {
		return true
	}
	if report.RequestedBy == viewer || report.SubmittedBy == viewer {
		return true
	}
	return department != "" && report.DepartmentID == department
}
