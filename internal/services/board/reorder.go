package board

import (
	"time"

	"github.com/tavlaboard/tavla/internal/models"
)

// ApplyDrop computes the new global task collection after a drop gesture.
//
// tasks is the authoritative collection; visible is the filtered list the
// user was looking at, since the drop's column indices are positions
// within the per-column views of that filtered list. The returned bool
// reports whether the collection changed; cancelled drops, drops onto the
// task's own position, and drops whose task cannot be resolved are no-ops.
func ApplyDrop(tasks, visible []models.Task, drop models.DropResult, now time.Time) ([]models.Task, bool) {
	if drop.Destination == nil {
		return tasks, false
	}

	src := drop.Source
	dst := *drop.Destination
	if src.Status == dst.Status && src.Index == dst.Index {
		return tasks, false
	}

	sourceView := TasksByStatus(visible, src.Status)
	srcIdx := indexOf(sourceView, drop.TaskID)
	if srcIdx < 0 {
		return tasks, false
	}

	if src.Status == dst.Status {
		reordered := moveWithin(sourceView, srcIdx, dst.Index)
		return spliceColumn(tasks, src.Status, reordered), true
	}

	moved := sourceView[srcIdx].Clone()
	moved.Status = dst.Status
	moved.UpdatedAt = now

	newSource := removeAt(sourceView, srcIdx)
	destView := TasksByStatus(visible, dst.Status)
	newDest := insertAt(destView, dst.Index, moved)

	// Rebuild: untouched columns keep their existing relative positions,
	// then the two rebuilt views follow.
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != src.Status && t.Status != dst.Status {
			out = append(out, t)
		}
	}
	out = append(out, newSource...)
	out = append(out, newDest...)
	return out, true
}

// spliceColumn replaces all tasks of the given status with the reordered
// view, leaving every other task in its existing relative position.
func spliceColumn(tasks []models.Task, status models.Status, view []models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != status {
			out = append(out, t)
		}
	}
	return append(out, view...)
}

// moveWithin removes the element at from and reinserts it at to
func moveWithin(view []models.Task, from, to int) []models.Task {
	moved := view[from]
	return insertAt(removeAt(view, from), to, moved)
}

func removeAt(view []models.Task, i int) []models.Task {
	out := make([]models.Task, 0, len(view)-1)
	out = append(out, view[:i]...)
	return append(out, view[i+1:]...)
}

// insertAt places t at index i, clamping so an index at (or past) the
// view's length appends at the end.
func insertAt(view []models.Task, i int, t models.Task) []models.Task {
	if i < 0 {
		i = 0
	}
	if i > len(view) {
		i = len(view)
	}
	out := make([]models.Task, 0, len(view)+1)
	out = append(out, view[:i]...)
	out = append(out, t)
	return append(out, view[i:]...)
}

func indexOf(view []models.Task, id string) int {
	for i, t := range view {
		if t.ID == id {
			return i
		}
	}
	return -1
}
