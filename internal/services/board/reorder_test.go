package board

import (
	"testing"
	"time"

	"github.com/tavlaboard/tavla/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var dropClock = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

func dropTasks() []models.Task {
	stamp := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mk := func(id string, status models.Status) models.Task {
		return models.Task{ID: id, Title: "Task " + id, Priority: models.PriorityLow,
			Status: status, CreatedAt: stamp, UpdatedAt: stamp}
	}
	return []models.Task{
		mk("X", models.StatusTodo),
		mk("Y", models.StatusTodo),
		mk("W", models.StatusTodo),
		mk("Z", models.StatusDone),
	}
}

func drop(taskID string, srcStatus models.Status, srcIdx int, dstStatus models.Status, dstIdx int) models.DropResult {
	return models.DropResult{
		TaskID:      taskID,
		Source:      models.DropPosition{Status: srcStatus, Index: srcIdx},
		Destination: &models.DropPosition{Status: dstStatus, Index: dstIdx},
	}
}

// ============================================================================
// No-op Tests
// ============================================================================

func TestApplyDrop_CancelledDrag(t *testing.T) {
	tasks := dropTasks()
	result := models.DropResult{
		TaskID: "X",
		Source: models.DropPosition{Status: models.StatusTodo, Index: 0},
	}

	got, changed := ApplyDrop(tasks, tasks, result, dropClock)
	if changed {
		t.Error("A drop with no destination must be a no-op")
	}
	assertIDs(t, got, "X", "Y", "W", "Z")
}

func TestApplyDrop_SamePosition(t *testing.T) {
	tasks := dropTasks()

	_, changed := ApplyDrop(tasks, tasks, drop("X", models.StatusTodo, 0, models.StatusTodo, 0), dropClock)
	if changed {
		t.Error("Dropping a task onto its own position must be a no-op")
	}
}

func TestApplyDrop_UnknownTaskID(t *testing.T) {
	tasks := dropTasks()

	_, changed := ApplyDrop(tasks, tasks, drop("ghost", models.StatusTodo, 0, models.StatusDone, 0), dropClock)
	if changed {
		t.Error("Dropping an unresolvable task must be a no-op")
	}
}

// ============================================================================
// Same-Column Reorder Tests
// ============================================================================

func TestApplyDrop_SameColumnReorder(t *testing.T) {
	tasks := dropTasks()

	got, changed := ApplyDrop(tasks, tasks, drop("X", models.StatusTodo, 0, models.StatusTodo, 2), dropClock)
	if !changed {
		t.Fatal("Expected the board to change")
	}

	assertIDs(t, TasksByStatus(got, models.StatusTodo), "Y", "W", "X")
	assertIDs(t, TasksByStatus(got, models.StatusDone), "Z")
}

func TestApplyDrop_SameColumnReorderKeepsUpdatedAt(t *testing.T) {
	tasks := dropTasks()

	got, _ := ApplyDrop(tasks, tasks, drop("X", models.StatusTodo, 0, models.StatusTodo, 1), dropClock)

	for _, task := range got {
		if task.ID == "X" && !task.UpdatedAt.Equal(tasks[0].UpdatedAt) {
			t.Error("A pure reorder must not bump UpdatedAt since the status does not change")
		}
	}
}

func TestApplyDrop_SameColumnMoveUp(t *testing.T) {
	tasks := dropTasks()

	got, _ := ApplyDrop(tasks, tasks, drop("W", models.StatusTodo, 2, models.StatusTodo, 0), dropClock)
	assertIDs(t, TasksByStatus(got, models.StatusTodo), "W", "X", "Y")
}

// ============================================================================
// Cross-Column Move Tests
// ============================================================================

func TestApplyDrop_CrossColumnMove(t *testing.T) {
	tasks := dropTasks()

	got, changed := ApplyDrop(tasks, tasks, drop("X", models.StatusTodo, 0, models.StatusDone, 1), dropClock)
	if !changed {
		t.Fatal("Expected the board to change")
	}

	assertIDs(t, TasksByStatus(got, models.StatusTodo), "Y", "W")
	assertIDs(t, TasksByStatus(got, models.StatusDone), "Z", "X")

	for _, task := range got {
		if task.ID != "X" {
			continue
		}
		if task.Status != models.StatusDone {
			t.Errorf("Moved task status = %s, want DONE", task.Status)
		}
		if !task.UpdatedAt.Equal(dropClock) {
			t.Error("A cross-column move must stamp UpdatedAt")
		}
	}
}

func TestApplyDrop_CrossColumnLeavesOtherColumnsUntouched(t *testing.T) {
	tasks := dropTasks()
	extra := models.Task{ID: "R", Status: models.StatusInReview, Priority: models.PriorityLow}
	tasks = append(tasks, extra)

	got, _ := ApplyDrop(tasks, tasks, drop("X", models.StatusTodo, 0, models.StatusDone, 0), dropClock)

	assertIDs(t, TasksByStatus(got, models.StatusInReview), "R")
}

func TestApplyDrop_DestinationIndexAtEndAppends(t *testing.T) {
	tasks := dropTasks()

	// DONE holds a single task; index 1 equals the view's length
	got, changed := ApplyDrop(tasks, tasks, drop("Y", models.StatusTodo, 1, models.StatusDone, 1), dropClock)
	if !changed {
		t.Fatal("Expected the board to change")
	}
	assertIDs(t, TasksByStatus(got, models.StatusDone), "Z", "Y")
}

func TestApplyDrop_DestinationIndexBeyondEndClamps(t *testing.T) {
	tasks := dropTasks()

	got, changed := ApplyDrop(tasks, tasks, drop("Y", models.StatusTodo, 1, models.StatusDone, 99), dropClock)
	if !changed {
		t.Fatal("Expected the board to change")
	}
	assertIDs(t, TasksByStatus(got, models.StatusDone), "Z", "Y")
}

// ============================================================================
// Filtered-View Tests
// ============================================================================

func TestApplyDrop_IndicesResolveAgainstFilteredView(t *testing.T) {
	tasks := dropTasks()

	// The user sees only X and W in TODO; index 1 in that view is W's slot.
	visible := []models.Task{tasks[0], tasks[2], tasks[3]}

	got, changed := ApplyDrop(tasks, visible, drop("X", models.StatusTodo, 0, models.StatusTodo, 1), dropClock)
	if !changed {
		t.Fatal("Expected the board to change")
	}
	assertIDs(t, TasksByStatus(got, models.StatusTodo), "W", "X")
}
