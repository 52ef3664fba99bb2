package model

import (
	"math"
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// DerivePriority maps a due date to an urgency tier relative to now.
// It is pure and total: a nil due date yields the medium default, past-due
// yields urgent. "now" is always injected so time-dependent callers stay
// testable.
func DerivePriority(now time.Time, due *time.Time) types.Priority {
	if due == nil {
		return types.PriorityMedium
	}

	days := int(math.Ceil(due.Sub(now).Hours() / 24))

	switch {
	case days < 0:
		return types.PriorityUrgent
	case days <= 2:
		return types.PriorityHigh
	case days <= 7:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}
