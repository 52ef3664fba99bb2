package types

import "fmt"

// Priority represents the urgency tier of a task or report
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// AllPriorities returns all valid priorities in ascending urgency order
func AllPriorities() []Priority {
	return []Priority{
		PriorityLow,
		PriorityMedium,
		PriorityHigh,
		PriorityUrgent,
	}
}

// IsValid checks if the priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow,
		PriorityMedium,
		PriorityHigh,
		PriorityUrgent:
		return true
	default:
		return false
	}
}

// Rank returns the numeric urgency of the priority, higher is more urgent.
// Unknown values rank as 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	default:
		return 0
	}
}

// Normalize returns the priority, treating empty as PriorityMedium
func (p Priority) Normalize() Priority {
	if p == "" {
		return PriorityMedium
	}
	return p
}

// String returns the string representation of the priority
func (p Priority) String() string {
	return string(p)
}

// ParsePriority parses a string into a Priority
func ParsePriority(s string) (Priority, error) {
	priority := Priority(s)
	if !priority.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return priority, nil
}
