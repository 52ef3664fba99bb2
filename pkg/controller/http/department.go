package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

type departmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func departmentToResponse(dept *model.Department) departmentResponse {
	return departmentResponse{
		ID:          dept.ID.String(),
		Name:        dept.Name,
		Description: dept.Description,
		CreatedAt:   dept.CreatedAt,
		UpdatedAt:   dept.UpdatedAt,
	}
}

func (s *Server) createDepartment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.Department.CreateDepartment(r.Context(), &model.Department{
		ID:          types.DepartmentID(req.ID),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, departmentToResponse(created))
}

func (s *Server) updateDepartment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	updated, err := s.uc.Department.UpdateDepartment(r.Context(), &model.Department{
		ID:          types.DepartmentID(chi.URLParam(r, "departmentID")),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, departmentToResponse(updated))
}

func (s *Server) getDepartment(w http.ResponseWriter, r *http.Request) {
	dept, err := s.uc.Department.GetDepartment(r.Context(), types.DepartmentID(chi.URLParam(r, "departmentID")))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, departmentToResponse(dept))
}

func (s *Server) listDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := s.uc.Department.ListDepartments(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]departmentResponse, len(departments))
	for i, dept := range departments {
		resp[i] = departmentToResponse(dept)
	}
	respondJSON(w, http.StatusOK, map[string]any{"departments": resp})
}

func (s *Server) deleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Department.DeleteDepartment(r.Context(), types.DepartmentID(chi.URLParam(r, "departmentID"))); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
