package model

import (
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// ReportRequest represents a request for a department to produce a report,
// optionally linked to a task.
type ReportRequest struct {
	ID            int64
	TaskID        *int64 // Optional link to the originating task
	RequestedBy   types.UserID
	DepartmentID  types.DepartmentID
	Title         string
	Description   string
	Content       string // Submitted body, empty until submission
	Status        types.ReportStatus
	DueDate       *time.Time
	SubmittedBy   types.UserID
	SubmittedAt   *time.Time
	ReviewerNotes string
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks structural invariants of the report request
func (r *ReportRequest) Validate() error {
	if r.Title == "" {
		return NewValidationError("report title is required")
	}
	if err := r.DepartmentID.Validate(); err != nil {
		return err
	}
	status := r.Status.Normalize()
	if !status.IsValid() {
		return NewValidationError("invalid report status: " + r.Status.String())
	}
	switch status {
	case types.ReportStatusRequested, types.ReportStatusInProgress:
		if r.SubmittedAt != nil {
			return NewValidationError("submittedAt must be unset before submission")
		}
	case types.ReportStatusApproved, types.ReportStatusRejected:
		if r.ReviewedAt == nil {
			return NewValidationError("reviewedAt must be set on a decided report")
		}
	}
	return nil
}

// IsSubmission reports whether the report currently represents a pending
// submission awaiting review.
func (r *ReportRequest) IsSubmission() bool {
	return r.SubmittedAt != nil && r.Status == types.ReportStatusSubmitted
}
