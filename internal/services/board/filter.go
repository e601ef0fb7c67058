// Package board implements the filtering, column projection, and
// drag-reorder logic for the kanban board, plus the controller that ties
// them to the task store.
package board

import (
	"strings"
	"time"

	"github.com/tavlaboard/tavla/internal/models"
)

// DateFilterMode selects which task dates the date-range criterion
// inspects. Two policies existed historically; the choice is explicit
// configuration rather than a guess.
type DateFilterMode string

const (
	// DateFilterDueDate matches tasks whose due date falls within the
	// bounds; tasks without a due date never match when a bound is set.
	DateFilterDueDate DateFilterMode = "due"

	// DateFilterAnyDate matches tasks whose start date or due date falls
	// within the bounds; tasks with neither date never match when a
	// bound is set.
	DateFilterAnyDate DateFilterMode = "any"
)

// ParseDateFilterMode normalizes a configured mode string, falling back
// to the due-date-only policy for unknown values.
func ParseDateFilterMode(s string) DateFilterMode {
	if DateFilterMode(s) == DateFilterAnyDate {
		return DateFilterAnyDate
	}
	return DateFilterDueDate
}

// ApplyFilter returns the tasks matching every active criterion, in the
// same relative order as the input. The input slice is never mutated.
func ApplyFilter(tasks []models.Task, f models.Filter, mode DateFilterMode) []models.Task {
	if !f.Active() {
		return append([]models.Task(nil), tasks...)
	}

	search := strings.ToLower(f.Search)
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if search != "" && !strings.Contains(strings.ToLower(t.Title), search) {
			continue
		}
		if f.ProjectID != "" && t.ProjectID != f.ProjectID {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if !matchesDateRange(t, f.DueFrom, f.DueTo, mode) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// matchesDateRange applies the date-range criterion. Absent bounds match
// everything.
func matchesDateRange(t models.Task, from, to *time.Time, mode DateFilterMode) bool {
	if from == nil && to == nil {
		return true
	}

	switch mode {
	case DateFilterAnyDate:
		return inRange(t.StartDate, from, to) || inRange(t.DueDate, from, to)
	default:
		return inRange(t.DueDate, from, to)
	}
}

// inRange reports whether d falls within [from, to], inclusive on
// whichever bounds are supplied. A nil date never matches.
func inRange(d, from, to *time.Time) bool {
	if d == nil {
		return false
	}
	if from != nil && d.Before(*from) {
		return false
	}
	if to != nil && d.After(*to) {
		return false
	}
	return true
}
