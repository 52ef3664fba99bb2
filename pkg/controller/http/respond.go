package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/repository/firestore"
	"github.com/govops-lab/ministrydesk/pkg/repository/memory"
	"github.com/govops-lab/ministrydesk/pkg/usecase"
	"github.com/govops-lab/ministrydesk/pkg/utils/errutil"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// respondError maps domain and use case errors onto HTTP status codes
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, usecase.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, usecase.ErrTaskNotFound),
		errors.Is(err, usecase.ErrReportNotFound),
		errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrDepartmentNotFound),
		errors.Is(err, usecase.ErrMinistryNotFound):
		status = http.StatusNotFound
	case errors.Is(err, memory.ErrAlreadyExists), errors.Is(err, firestore.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, memory.ErrNotFound), errors.Is(err, firestore.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, firestore.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}

	errutil.HandleHTTP(r.Context(), w, err, status)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(model.ErrValidation, "invalid request body", goerr.V("decode_error", err.Error()))
	}
	return nil
}
