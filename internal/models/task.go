package models

import "time"

// Task represents a single card on the kanban board
type Task struct {
	ID          string
	ProjectID   string // not validated against the project list; dangling IDs display as "Unknown Project"
	Title       string
	Description string
	Priority    Priority
	Status      Status
	StartDate   *time.Time
	DueDate     *time.Time
	CreatedAt   time.Time // set once at creation, never mutated
	UpdatedAt   time.Time // bumped on every update and on status-changing moves
}

// Clone returns a deep copy of the task, including its optional dates
func (t Task) Clone() Task {
	c := t
	if t.StartDate != nil {
		d := *t.StartDate
		c.StartDate = &d
	}
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	return c
}

// CloneTasks deep-copies a task slice so callers can hand out snapshots
// without exposing the authoritative collection to mutation.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
