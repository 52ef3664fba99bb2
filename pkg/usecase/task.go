package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/model/auth"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

type TaskUseCase struct {
	repo interfaces.Repository
	now  func() time.Time
}

func NewTaskUseCase(repo interfaces.Repository, now func() time.Time) *TaskUseCase {
	return &TaskUseCase{
		repo: repo,
		now:  now,
	}
}

// CreateTaskInput carries the caller-provided fields for a new task
type CreateTaskInput struct {
	Title        string
	Description  string
	DepartmentID types.DepartmentID
	AssignedTo   types.UserID
	Priority     types.Priority
	DueDate      *time.Time
}

// CreateTask creates a task on behalf of the identity in the context.
// Only leadership roles may assign tasks. When no priority is given it is
// derived from the due date.
func (uc *TaskUseCase) CreateTask(ctx context.Context, input *CreateTaskInput) (*model.Task, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	caps := model.CapabilitiesFor(ident.Role)
	if !caps.CreateTasks {
		return nil, goerr.Wrap(ErrForbidden, "role cannot create tasks", goerr.V("role", ident.Role))
	}

	if input.Title == "" {
		return nil, model.NewValidationError("task title is required")
	}

	if _, err := uc.repo.Department().Get(ctx, input.DepartmentID); err != nil {
		return nil, goerr.Wrap(ErrDepartmentNotFound, "target department not found",
			goerr.V("department_id", input.DepartmentID))
	}

	if input.AssignedTo != "" {
		assignee, err := uc.repo.User().Get(ctx, input.AssignedTo)
		if err != nil {
			return nil, goerr.Wrap(ErrUserNotFound, "assignee not found", goerr.V(UserIDKey, input.AssignedTo))
		}
		if assignee.DepartmentID != "" && assignee.DepartmentID != input.DepartmentID {
			return nil, model.NewValidationError("assignee does not belong to the target department")
		}
	}

	priority := input.Priority
	if priority == "" {
		priority = model.DerivePriority(uc.now(), input.DueDate)
	}
	if !priority.IsValid() {
		return nil, model.NewValidationError("invalid task priority: " + priority.String())
	}

	task := &model.Task{
		Title:        input.Title,
		Description:  input.Description,
		AssignedBy:   ident.Sub,
		DepartmentID: input.DepartmentID,
		AssignedTo:   input.AssignedTo,
		Priority:     priority,
		Status:       types.TaskStatusPending,
		DueDate:      input.DueDate,
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Task().Create(ctx, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create task")
	}

	return created, nil
}

// GetTask returns the task if it is within the caller's data scope
func (uc *TaskUseCase) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	task, err := uc.repo.Task().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrTaskNotFound, "task not found", goerr.V(TaskIDKey, id))
	}

	caps := model.CapabilitiesFor(ident.Role)
	if !caps.TaskVisible(task, ident.Sub, ident.DepartmentID) {
		return nil, goerr.Wrap(ErrForbidden, "task is outside the caller's scope", goerr.V(TaskIDKey, id))
	}

	return task, nil
}

// ListTasks returns tasks within the caller's data scope. Leadership sees all
// departments; a department user sees tasks assigned to them plus tasks of
// their own department.
func (uc *TaskUseCase) ListTasks(ctx context.Context, opts ...interfaces.ListTaskOption) ([]*model.Task, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	caps := model.CapabilitiesFor(ident.Role)
	if caps.ReadAllDepartments {
		tasks, err := uc.repo.Task().List(ctx, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list tasks")
		}
		return tasks, nil
	}

	// Scoped visibility is a union of two conjunctive queries, so the store
	// contract stays simple.
	byAssignee, err := uc.repo.Task().List(ctx, append(opts, interfaces.WithTaskAssignee(ident.Sub))...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assigned tasks")
	}

	var byDepartment []*model.Task
	if ident.DepartmentID != "" {
		byDepartment, err = uc.repo.Task().List(ctx, append(opts, interfaces.WithTaskDepartment(ident.DepartmentID))...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list department tasks")
		}
	}

	return mergeTasks(byAssignee, byDepartment), nil
}

func mergeTasks(lists ...[]*model.Task) []*model.Task {
	seen := make(map[int64]bool)
	merged := []*model.Task{}
	for _, list := range lists {
		for _, task := range list {
			if seen[task.ID] {
				continue
			}
			seen[task.ID] = true
			merged = append(merged, task)
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

// UpdateTaskStatus moves a task through its lifecycle. The assignee (or any
// member of the target department for unassigned tasks) may progress it;
// cancellation is reserved for the creator and roles that can cancel any
// task. Completion stamps CompletedAt.
func (uc *TaskUseCase) UpdateTaskStatus(ctx context.Context, id int64, next types.TaskStatus) (*model.Task, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	task, err := uc.repo.Task().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrTaskNotFound, "task not found", goerr.V(TaskIDKey, id))
	}

	if !next.IsValid() {
		return nil, model.NewValidationError("invalid task status: " + next.String())
	}
	if !task.Status.CanTransitionTo(next) {
		return nil, goerr.Wrap(ErrInvalidTransition, "task status transition is not allowed",
			goerr.V(TaskIDKey, id),
			goerr.V("from", task.Status),
			goerr.V("to", next))
	}

	caps := model.CapabilitiesFor(ident.Role)
	if next == types.TaskStatusCancelled {
		if task.AssignedBy != ident.Sub && !caps.CancelAnyTask {
			return nil, goerr.Wrap(ErrForbidden, "only the creator or leadership may cancel a task",
				goerr.V(TaskIDKey, id))
		}
	} else if !uc.mayProgress(task, ident) {
		return nil, goerr.Wrap(ErrForbidden, "caller may not progress this task", goerr.V(TaskIDKey, id))
	}

	task.Status = next
	if next == types.TaskStatusCompleted {
		completedAt := uc.now()
		task.CompletedAt = &completedAt
	} else {
		task.CompletedAt = nil
	}

	updated, err := uc.repo.Task().Update(ctx, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update task status", goerr.V(TaskIDKey, id))
	}

	return updated, nil
}

// UpdateTaskInput carries the editable fields of a task
type UpdateTaskInput struct {
	Title       string
	Description string
	AssignedTo  types.UserID
	Priority    types.Priority
	DueDate     *time.Time
}

// UpdateTask edits the descriptive fields of a task. Only roles that can
// assign tasks may edit them, and terminal tasks are immutable. Status
// changes go through UpdateTaskStatus.
func (uc *TaskUseCase) UpdateTask(ctx context.Context, id int64, input *UpdateTaskInput) (*model.Task, error) {
	ident, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	caps := model.CapabilitiesFor(ident.Role)
	if !caps.CreateTasks {
		return nil, goerr.Wrap(ErrForbidden, "role cannot edit tasks", goerr.V("role", ident.Role))
	}

	task, err := uc.repo.Task().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrTaskNotFound, "task not found", goerr.V(TaskIDKey, id))
	}

	if task.Status.IsTerminal() {
		return nil, goerr.Wrap(ErrInvalidTransition, "terminal task cannot be edited",
			goerr.V(TaskIDKey, id), goerr.V("status", task.Status))
	}

	if input.Title == "" {
		return nil, model.NewValidationError("task title is required")
	}

	if input.AssignedTo != "" && input.AssignedTo != task.AssignedTo {
		assignee, err := uc.repo.User().Get(ctx, input.AssignedTo)
		if err != nil {
			return nil, goerr.Wrap(ErrUserNotFound, "assignee not found", goerr.V(UserIDKey, input.AssignedTo))
		}
		if assignee.DepartmentID != "" && assignee.DepartmentID != task.DepartmentID {
			return nil, model.NewValidationError("assignee does not belong to the target department")
		}
	}

	priority := input.Priority
	if priority == "" {
		priority = model.DerivePriority(uc.now(), input.DueDate)
	}
	if !priority.IsValid() {
		return nil, model.NewValidationError("invalid task priority: " + priority.String())
	}

	task.Title = input.Title
	task.Description = input.Description
	task.AssignedTo = input.AssignedTo
	task.Priority = priority
	task.DueDate = input.DueDate

	updated, err := uc.repo.Task().Update(ctx, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update task", goerr.V(TaskIDKey, id))
	}

	return updated, nil
}

func (uc *TaskUseCase) mayProgress(task *model.Task, ident *auth.Identity) bool {
	caps := model.CapabilitiesFor(ident.Role)
	if caps.ReadAllDepartments {
		return true
	}
	if task.AssignedTo != "" {
		return task.AssignedTo == ident.Sub
	}
	return ident.DepartmentID != "" && task.DepartmentID == ident.DepartmentID
}
