package http

import (
	"net/http"
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
	"github.com/govops-lab/ministrydesk/pkg/usecase"
)

type reportResponse struct {
	ID            int64      `json:"id"`
	TaskID        *int64     `json:"task_id,omitempty"`
	RequestedBy   string     `json:"requested_by"`
	DepartmentID  string     `json:"department_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Content       string     `json:"content,omitempty"`
	Status        string     `json:"status"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	SubmittedBy   string     `json:"submitted_by,omitempty"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	ReviewerNotes string     `json:"reviewer_notes,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func reportToResponse(report *model.ReportRequest) reportResponse {
	return reportResponse{
		ID:            report.ID,
		TaskID:        report.TaskID,
		RequestedBy:   report.RequestedBy.String(),
		DepartmentID:  report.DepartmentID.String(),
		Title:         report.Title,
		Description:   report.Description,
		Content:       report.Content,
		Status:        report.Status.String(),
		DueDate:       report.DueDate,
		SubmittedBy:   report.SubmittedBy.String(),
		SubmittedAt:   report.SubmittedAt,
		ReviewerNotes: report.ReviewerNotes,
		ReviewedAt:    report.ReviewedAt,
		CreatedAt:     report.CreatedAt,
		UpdatedAt:     report.UpdatedAt,
	}
}

func (s *Server) createReportRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title        string     `json:"title"`
		Description  string     `json:"description"`
		DepartmentID string     `json:"department_id"`
		TaskID       *int64     `json:"task_id"`
		DueDate      *time.Time `json:"due_date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.Report.CreateReportRequest(r.Context(), &usecase.CreateReportRequestInput{
		Title:        req.Title,
		Description:  req.Description,
		DepartmentID: types.DepartmentID(req.DepartmentID),
		TaskID:       req.TaskID,
		DueDate:      req.DueDate,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, reportToResponse(created))
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "reportID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	report, err := s.uc.Report.GetReport(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, reportToResponse(report))
}

func (s *Server) listReports(w http.ResponseWriter, r *http.Request) {
	var opts []interfaces.ListReportOption
	if v := r.URL.Query().Get("status"); v != "" {
		opts = append(opts, interfaces.WithReportStatus(types.ReportStatus(v)))
	}
	if v := r.URL.Query().Get("department_id"); v != "" {
		opts = append(opts, interfaces.WithReportDepartment(types.DepartmentID(v)))
	}
	if v := r.URL.Query().Get("requested_by"); v != "" {
		opts = append(opts, interfaces.WithReportRequester(types.UserID(v)))
	}

	reports, err := s.uc.Report.ListReports(r.Context(), opts...)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]reportResponse, len(reports))
	for i, report := range reports {
		resp[i] = reportToResponse(report)
	}
	respondJSON(w, http.StatusOK, map[string]any{"reports": resp})
}

func (s *Server) startReport(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "reportID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	updated, err := s.uc.Report.StartReport(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, reportToResponse(updated))
}

func (s *Server) submitReport(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "reportID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	updated, err := s.uc.Report.SubmitReport(r.Context(), id, req.Content)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, reportToResponse(updated))
}

func (s *Server) reviewReport(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "reportID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req struct {
		Decision string `json:"decision"`
		Notes    string `json:"notes"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	updated, err := s.uc.Report.ReviewReport(r.Context(), id, types.ReportStatus(req.Decision), req.Notes)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, reportToResponse(updated))
}
