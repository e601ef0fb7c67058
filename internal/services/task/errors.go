package task

import "errors"

// Task store errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrInvalidStatus   = errors.New("invalid task status")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")
)
