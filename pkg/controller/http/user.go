package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/model/auth"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

type userResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	DepartmentID string    `json:"department_id,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func userToResponse(user *model.User) userResponse {
	return userResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		FullName:     user.FullName,
		Role:         user.Role.String(),
		DepartmentID: user.DepartmentID.String(),
		AvatarURL:    user.AvatarURL,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

type userRequest struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	DepartmentID string `json:"department_id"`
	AvatarURL    string `json:"avatar_url"`
	IsActive     *bool  `json:"is_active"`
}

func (req *userRequest) toModel() *model.User {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &model.User{
		ID:           types.UserID(req.ID),
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         types.Role(req.Role),
		DepartmentID: types.DepartmentID(req.DepartmentID),
		AvatarURL:    req.AvatarURL,
		IsActive:     active,
	}
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.User.CreateProfile(r.Context(), req.toModel())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, userToResponse(created))
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	req.ID = chi.URLParam(r, "userID")

	updated, err := s.uc.User.UpdateProfile(r.Context(), req.toModel())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, userToResponse(updated))
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.uc.User.GetProfile(r.Context(), types.UserID(chi.URLParam(r, "userID")))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, userToResponse(user))
}

// currentUser returns the profile of the authenticated caller
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) {
	ident, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	user, err := s.uc.User.GetProfile(r.Context(), ident.Sub)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, userToResponse(user))
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	var opts []interfaces.ListUserOption
	if v := r.URL.Query().Get("department_id"); v != "" {
		opts = append(opts, interfaces.WithUserDepartment(types.DepartmentID(v)))
	}
	if r.URL.Query().Get("active") == "true" {
		opts = append(opts, interfaces.WithActiveUsersOnly())
	}

	users, err := s.uc.User.ListProfiles(r.Context(), opts...)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]userResponse, len(users))
	for i, user := range users {
		resp[i] = userToResponse(user)
	}
	respondJSON(w, http.StatusOK, map[string]any{"users": resp})
}

func (s *Server) deactivateUser(w http.ResponseWriter, r *http.Request) {
	updated, err := s.uc.User.DeactivateProfile(r.Context(), types.UserID(chi.URLParam(r, "userID")))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, userToResponse(updated))
}
