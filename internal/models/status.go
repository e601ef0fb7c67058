package models

import (
	"fmt"
	"strings"
)

// Status identifies the board column a task belongs to.
// Every task has exactly one status at any time.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusInReview   Status = "IN_REVIEW"
	StatusDone       Status = "DONE"
)

// AllStatuses returns the four board columns in display order.
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusInReview, StatusDone}
}

// ParseStatus converts a raw string into a Status. Input is matched
// case-insensitively, with spaces and dashes treated as underscores.
func ParseStatus(s string) (Status, error) {
	switch v := Status(normalizeEnum(s)); v {
	case StatusTodo, StatusInProgress, StatusInReview, StatusDone:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func normalizeEnum(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

// Valid reports whether s is one of the four board statuses
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusInReview, StatusDone:
		return true
	}
	return false
}

// Display returns the human-readable column title
func (s Status) Display() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusInReview:
		return "In Review"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// Next returns the column to the right, or s itself if already at DONE.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusInProgress
	case StatusInProgress:
		return StatusInReview
	case StatusInReview:
		return StatusDone
	}
	return s
}

// Prev returns the column to the left, or s itself if already at TODO.
func (s Status) Prev() Status {
	switch s {
	case StatusDone:
		return StatusInReview
	case StatusInReview:
		return StatusInProgress
	case StatusInProgress:
		return StatusTodo
	}
	return s
}
