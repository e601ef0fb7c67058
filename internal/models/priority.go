package models

import "fmt"

// Priority is a task's urgency level. It is ordinal for display only;
// filtering matches priorities exactly.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// AllPriorities returns the priorities from least to most urgent.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// ParsePriority converts a raw string into a Priority. Input is matched
// case-insensitively.
func ParsePriority(s string) (Priority, error) {
	switch v := Priority(normalizeEnum(s)); v {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPriority, s)
}

// Valid reports whether p is one of the four priority levels
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Display returns the human-readable priority label
func (p Priority) Display() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	}
	return string(p)
}
