package model_test

import (
	"testing"

	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestCapabilitiesFor(t *testing.T) {
	t.Run("admin has every capability", func(t *testing.T) {
		caps := model.CapabilitiesFor(types.RoleAdmin)
		gt.Bool(t, caps.ReadAllDepartments).True()
		gt.Bool(t, caps.CreateTasks).True()
		gt.Bool(t, caps.ReviewReports).True()
		gt.Bool(t, caps.ManageUsers).True()
		gt.Bool(t, caps.ManageMinistries).True()
	})

	t.Run("leadership reviews but does not manage users", func(t *testing.T) {
		for _, role := range []types.Role{types.RoleDG, types.RoleMinister} {
			caps := model.CapabilitiesFor(role)
			gt.Bool(t, caps.ReadAllDepartments).True()
			gt.Bool(t, caps.CreateTasks).True()
			gt.Bool(t, caps.CreateReportRequests).True()
			gt.Bool(t, caps.ReviewReports).True()
			gt.Bool(t, caps.ManageUsers).False()
			gt.Bool(t, caps.ManageMinistries).False()
		}
	})

	t.Run("department user submits but cannot create or review", func(t *testing.T) {
		caps := model.CapabilitiesFor(types.RoleDepartmentUser)
		gt.Bool(t, caps.SubmitReports).True()
		gt.Bool(t, caps.ReadAllDepartments).False()
		gt.Bool(t, caps.CreateTasks).False()
		gt.Bool(t, caps.CreateReportRequests).False()
		gt.Bool(t, caps.ReviewReports).False()
	})

	t.Run("unknown role has nothing", func(t *testing.T) {
		caps := model.CapabilitiesFor(types.Role("guest"))
		gt.Value(t, caps).Equal(model.Capabilities{})
	})
}

func TestCapabilities_TaskVisible(t *testing.T) {
	deptA := types.DepartmentID("dept-a")
	deptB := types.DepartmentID("dept-b")

	own := &model.Task{ID: 1, DepartmentID: deptA}
	assigned := &model.Task{ID: 2, DepartmentID: deptB, AssignedTo: "u1"}
	other := &model.Task{ID: 3, DepartmentID: deptB}

	t.Run("leadership sees all", func(t *testing.T) {
		caps := model.CapabilitiesFor(types.RoleMinister)
		gt.Bool(t, caps.TaskVisible(own, "u1", "")).True()
		gt.Bool(t, caps.TaskVisible(other, "u1", "")).True()
	})

	t.Run("department user sees own department and direct assignments", func(t *testing.T) {
		caps := model.CapabilitiesFor(types.RoleDepartmentUser)
		gt.Bool(t, caps.TaskVisible(own, "u1", deptA)).True()
		gt.Bool(t, caps.TaskVisible(assigned, "u1", deptA)).True()
		gt.Bool(t, caps.TaskVisible(other, "u1", deptA)).False()
	})

	t.Run("user without department sees only direct assignments", func(t *testing.T) {
		caps := model.CapabilitiesFor(types.RoleDepartmentUser)
		gt.Bool(t, caps.TaskVisible(assigned, "u1", "")).True()
		gt.Bool(t, caps.TaskVisible(own, "u1", "")).False()
	})
}

func TestCapabilities_ReportVisible(t *testing.T) {
	deptA := types.DepartmentID("dept-a")
	deptB := types.DepartmentID("dept-b")

	caps := model.CapabilitiesFor(types.RoleDepartmentUser)

	t.Run("own department visible", func(t *testing.T) {
		r := &model.ReportRequest{ID: 1, DepartmentID: deptA}
		gt.Bool(t, caps.ReportVisible(r, "u1", deptA)).True()
	})

	t.Run("other department hidden", func(t *testing.T) {
		r := &model.ReportRequest{ID: 2, DepartmentID: deptB}
		gt.Bool(t, caps.ReportVisible(r, "u1", deptA)).False()
	})

	t.Run("own submission visible across departments", func(t *testing.T) {
		r := &model.ReportRequest{ID: 3, DepartmentID: deptB, SubmittedBy: "u1"}
		gt.Bool(t, caps.ReportVisible(r, "u1", deptA)).True()
	})
}
