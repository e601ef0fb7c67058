package models

import "time"

// TaskPatch is a partial update applied onto an existing task.
// Nil fields retain the task's prior value. Dates additionally carry
// explicit clear flags so a patch can distinguish "leave alone" from
// "remove the date".
type TaskPatch struct {
	ProjectID   *string
	Title       *string
	Description *string
	Priority    *Priority
	Status      *Status

	StartDate      *time.Time
	ClearStartDate bool
	DueDate        *time.Time
	ClearDueDate   bool
}

// Apply merges the patch onto t and returns the result. The task's ID and
// CreatedAt are always preserved; UpdatedAt is left untouched because the
// store stamps it when committing the update.
func (p TaskPatch) Apply(t Task) Task {
	out := t.Clone()

	if p.ProjectID != nil {
		out.ProjectID = *p.ProjectID
	}
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.Status != nil {
		out.Status = *p.Status
	}

	switch {
	case p.ClearStartDate:
		out.StartDate = nil
	case p.StartDate != nil:
		d := *p.StartDate
		out.StartDate = &d
	}

	switch {
	case p.ClearDueDate:
		out.DueDate = nil
	case p.DueDate != nil:
		d := *p.DueDate
		out.DueDate = &d
	}

	return out
}
