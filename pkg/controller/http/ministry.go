package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

type ministryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Code        string    `json:"code,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ministryToResponse(ministry *model.Ministry) ministryResponse {
	return ministryResponse{
		ID:          ministry.ID.String(),
		Name:        ministry.Name,
		Description: ministry.Description,
		Code:        ministry.Code,
		IsActive:    ministry.IsActive,
		CreatedAt:   ministry.CreatedAt,
		UpdatedAt:   ministry.UpdatedAt,
	}
}

type ministryRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Code        string `json:"code"`
	IsActive    *bool  `json:"is_active"`
}

func (req *ministryRequest) toModel() *model.Ministry {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &model.Ministry{
		ID:          types.MinistryID(req.ID),
		Name:        req.Name,
		Description: req.Description,
		Code:        req.Code,
		IsActive:    active,
	}
}

func (s *Server) createMinistry(w http.ResponseWriter, r *http.Request) {
	var req ministryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.Ministry.CreateMinistry(r.Context(), req.toModel())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, ministryToResponse(created))
}

func (s *Server) updateMinistry(w http.ResponseWriter, r *http.Request) {
	var req ministryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	req.ID = chi.URLParam(r, "ministryID")

	updated, err := s.uc.Ministry.UpdateMinistry(r.Context(), req.toModel())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, ministryToResponse(updated))
}

func (s *Server) getMinistry(w http.ResponseWriter, r *http.Request) {
	ministry, err := s.uc.Ministry.GetMinistry(r.Context(), types.MinistryID(chi.URLParam(r, "ministryID")))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, ministryToResponse(ministry))
}

func (s *Server) listMinistries(w http.ResponseWriter, r *http.Request) {
	ministries, err := s.uc.Ministry.ListMinistries(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]ministryResponse, len(ministries))
	for i, ministry := range ministries {
		resp[i] = ministryToResponse(ministry)
	}
	respondJSON(w, http.StatusOK, map[string]any{"ministries": resp})
}

func (s *Server) deleteMinistry(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Ministry.DeleteMinistry(r.Context(), types.MinistryID(chi.URLParam(r, "ministryID"))); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
