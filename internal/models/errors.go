package models

import "errors"

// Parsing errors for the closed enumerations
var (
	// ErrUnknownStatus indicates a string that is not one of the four board statuses
	ErrUnknownStatus = errors.New("unknown task status")

	// ErrUnknownPriority indicates a string that is not one of the four priority levels
	ErrUnknownPriority = errors.New("unknown task priority")
)
