package types

import "fmt"

// ReportStatus represents the status of a report request
type ReportStatus string

const (
	ReportStatusRequested  ReportStatus = "requested"
	ReportStatusInProgress ReportStatus = "in_progress"
	ReportStatusSubmitted  ReportStatus = "submitted"
	ReportStatusReviewed   ReportStatus = "reviewed"
	ReportStatusApproved   ReportStatus = "approved"
	ReportStatusRejected   ReportStatus = "rejected"
)

// AllReportStatuses returns all valid report statuses
func AllReportStatuses() []ReportStatus {
	return []ReportStatus{
		ReportStatusRequested,
		ReportStatusInProgress,
		ReportStatusSubmitted,
		ReportStatusReviewed,
		ReportStatusApproved,
		ReportStatusRejected,
	}
}

// IsValid checks if the report status is valid
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusRequested,
		ReportStatusInProgress,
		ReportStatusSubmitted,
		ReportStatusReviewed,
		ReportStatusApproved,
		ReportStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from the status
func (s ReportStatus) IsTerminal() bool {
	return s == ReportStatusApproved || s == ReportStatusRejected
}

// IsDecision reports whether the status is a review decision
func (s ReportStatus) IsDecision() bool {
	return s == ReportStatusApproved || s == ReportStatusRejected
}

// CanTransitionTo reports whether the transition from s to next is legal.
// requested is the initial state; approved and rejected are terminal.
// The legacy "reviewed" value is accepted in stored data but is not a
// reachable transition target.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	switch s {
	case ReportStatusRequested:
		return next == ReportStatusInProgress || next == ReportStatusSubmitted
	case ReportStatusInProgress:
		return next == ReportStatusSubmitted
	case ReportStatusSubmitted:
		return next == ReportStatusApproved || next == ReportStatusRejected
	default:
		return false
	}
}

// Normalize returns the status, treating empty as ReportStatusRequested
func (s ReportStatus) Normalize() ReportStatus {
	if s == "" {
		return ReportStatusRequested
	}
	return s
}

// String returns the string representation of the report status
func (s ReportStatus) String() string {
	return string(s)
}

// ParseReportStatus parses a string into a ReportStatus
func ParseReportStatus(s string) (ReportStatus, error) {
	status := ReportStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid report status: %s", s)
	}
	return status, nil
}
