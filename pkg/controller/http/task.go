package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
	"github.com/govops-lab/ministrydesk/pkg/usecase"
)

type taskResponse struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	AssignedBy   string     `json:"assigned_by"`
	DepartmentID string     `json:"department_id"`
	AssignedTo   string     `json:"assigned_to,omitempty"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func taskToResponse(task *model.Task) taskResponse {
	return taskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		AssignedBy:   task.AssignedBy.String(),
		DepartmentID: task.DepartmentID.String(),
		AssignedTo:   task.AssignedTo.String(),
		Priority:     task.Priority.String(),
		Status:       task.Status.String(),
		DueDate:      task.DueDate,
		CompletedAt:  task.CompletedAt,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
}

func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, model.NewValidationError("invalid " + param)
	}
	return id, nil
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title        string     `json:"title"`
		Description  string     `json:"description"`
		DepartmentID string     `json:"department_id"`
		AssignedTo   string     `json:"assigned_to"`
		Priority     string     `json:"priority"`
		DueDate      *time.Time `json:"due_date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.Task.CreateTask(r.Context(), &usecase.CreateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		DepartmentID: types.DepartmentID(req.DepartmentID),
		AssignedTo:   types.UserID(req.AssignedTo),
		Priority:     types.Priority(req.Priority),
		DueDate:      req.DueDate,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, taskToResponse(created))
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "taskID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	task, err := s.uc.Task.GetTask(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, taskToResponse(task))
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	var opts []interfaces.ListTaskOption
	if v := r.URL.Query().Get("status"); v != "" {
		opts = append(opts, interfaces.WithTaskStatus(types.TaskStatus(v)))
	}
	if v := r.URL.Query().Get("department_id"); v != "" {
		opts = append(opts, interfaces.WithTaskDepartment(types.DepartmentID(v)))
	}
	if v := r.URL.Query().Get("assigned_to"); v != "" {
		opts = append(opts, interfaces.WithTaskAssignee(types.UserID(v)))
	}

	tasks, err := s.uc.Task.ListTasks(r.Context(), opts...)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		resp[i] = taskToResponse(task)
	}
	respondJSON(w, http.StatusOK, map[string]any{"tasks": resp})
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "taskID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		AssignedTo  string     `json:"assigned_to"`
		Priority    string     `json:"priority"`
		DueDate     *time.Time `json:"due_date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	updated, err := s.uc.Task.UpdateTask(r.Context(), id, &usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  types.UserID(req.AssignedTo),
		Priority:    types.Priority(req.Priority),
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, taskToResponse(updated))
}

func (s *Server) updateTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "taskID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	updated, err := s.uc.Task.UpdateTaskStatus(r.Context(), id, types.TaskStatus(req.Status))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, taskToResponse(updated))
}
