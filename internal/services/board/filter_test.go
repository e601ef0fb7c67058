package board

import (
	"testing"
	"time"

	"github.com/tavlaboard/tavla/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func boardTasks() []models.Task {
	return []models.Task{
		{ID: "1", ProjectID: "1", Title: "Design homepage layout", Priority: models.PriorityHigh,
			Status: models.StatusTodo, StartDate: date(2024, 3, 1), DueDate: date(2024, 3, 15)},
		{ID: "2", ProjectID: "1", Title: "Implement responsive design", Priority: models.PriorityMedium,
			Status: models.StatusInProgress, StartDate: date(2024, 3, 5), DueDate: date(2024, 3, 20)},
		{ID: "3", ProjectID: "2", Title: "User authentication", Priority: models.PriorityUrgent,
			Status: models.StatusInReview, StartDate: date(2024, 2, 25), DueDate: date(2024, 3, 10)},
		{ID: "4", ProjectID: "3", Title: "API documentation", Priority: models.PriorityLow,
			Status: models.StatusDone, StartDate: date(2024, 2, 15), DueDate: date(2024, 2, 28)},
		{ID: "5", ProjectID: "2", Title: "Undated chore", Priority: models.PriorityLow,
			Status: models.StatusTodo},
	}
}

func ids(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func assertIDs(t *testing.T, got []models.Task, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("Got ids %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("Got ids %v, want %v", gotIDs, want)
		}
	}
}

// ============================================================================
// Filter Tests
// ============================================================================

func TestApplyFilter_EmptyFilterMatchesAll(t *testing.T) {
	tasks := boardTasks()
	got := ApplyFilter(tasks, models.Filter{}, DateFilterDueDate)
	assertIDs(t, got, "1", "2", "3", "4", "5")
}

func TestApplyFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := ApplyFilter(boardTasks(), models.Filter{Search: "DESIGN"}, DateFilterDueDate)
	assertIDs(t, got, "1", "2")
}

func TestApplyFilter_ProjectExactMatch(t *testing.T) {
	got := ApplyFilter(boardTasks(), models.Filter{ProjectID: "2"}, DateFilterDueDate)
	assertIDs(t, got, "3", "5")
}

func TestApplyFilter_PriorityExactMatch(t *testing.T) {
	got := ApplyFilter(boardTasks(), models.Filter{Priority: models.PriorityLow}, DateFilterDueDate)
	assertIDs(t, got, "4", "5")
}

func TestApplyFilter_DueDateRange(t *testing.T) {
	tests := []struct {
		name   string
		filter models.Filter
		want   []string
	}{
		{
			name:   "window excludes task due after it",
			filter: models.Filter{DueFrom: date(2024, 3, 1), DueTo: date(2024, 3, 10)},
			want:   []string{"3"},
		},
		{
			name:   "wider window includes it",
			filter: models.Filter{DueFrom: date(2024, 3, 1), DueTo: date(2024, 3, 20)},
			want:   []string{"1", "2", "3"},
		},
		{
			name:   "from bound only",
			filter: models.Filter{DueFrom: date(2024, 3, 16)},
			want:   []string{"2"},
		},
		{
			name:   "to bound only",
			filter: models.Filter{DueTo: date(2024, 2, 28)},
			want:   []string{"4"},
		},
		{
			name:   "bounds are inclusive",
			filter: models.Filter{DueFrom: date(2024, 3, 15), DueTo: date(2024, 3, 15)},
			want:   []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilter(boardTasks(), tt.filter, DateFilterDueDate)
			assertIDs(t, got, tt.want...)
		})
	}
}

func TestApplyFilter_DuelessTaskNeverMatchesDateBound(t *testing.T) {
	got := ApplyFilter(boardTasks(), models.Filter{DueFrom: date(2020, 1, 1)}, DateFilterDueDate)
	for _, task := range got {
		if task.ID == "5" {
			t.Error("Task without a due date must not match an active date bound")
		}
	}
}

func TestApplyFilter_AnyDateMode(t *testing.T) {
	// Task 3 starts 2024-02-25 and is due 2024-03-10. A window covering
	// only its start date matches in "any" mode but not in "due" mode.
	filter := models.Filter{DueFrom: date(2024, 2, 24), DueTo: date(2024, 2, 26)}

	if got := ApplyFilter(boardTasks(), filter, DateFilterDueDate); len(got) != 0 {
		t.Errorf("Due-date mode matched %v, want none", ids(got))
	}

	got := ApplyFilter(boardTasks(), filter, DateFilterAnyDate)
	assertIDs(t, got, "3")
}

func TestApplyFilter_CriteriaCombineWithAND(t *testing.T) {
	filter := models.Filter{
		Search:    "design",
		ProjectID: "1",
		Priority:  models.PriorityHigh,
		DueFrom:   date(2024, 3, 1),
		DueTo:     date(2024, 3, 20),
	}

	got := ApplyFilter(boardTasks(), filter, DateFilterDueDate)
	assertIDs(t, got, "1")

	// Relaxing one criterion widens the result to everything passing the rest
	filter.Priority = ""
	got = ApplyFilter(boardTasks(), filter, DateFilterDueDate)
	assertIDs(t, got, "1", "2")
}

func TestApplyFilter_PreservesOrder(t *testing.T) {
	tasks := []models.Task{
		{ID: "c", Title: "match three", Status: models.StatusTodo},
		{ID: "a", Title: "match one", Status: models.StatusTodo},
		{ID: "b", Title: "match two", Status: models.StatusTodo},
	}

	got := ApplyFilter(tasks, models.Filter{Search: "match"}, DateFilterDueDate)
	assertIDs(t, got, "c", "a", "b")
}

func TestParseDateFilterMode(t *testing.T) {
	if ParseDateFilterMode("any") != DateFilterAnyDate {
		t.Error(`"any" should parse to DateFilterAnyDate`)
	}
	if ParseDateFilterMode("due") != DateFilterDueDate {
		t.Error(`"due" should parse to DateFilterDueDate`)
	}
	if ParseDateFilterMode("bogus") != DateFilterDueDate {
		t.Error("Unknown modes should fall back to due-date-only")
	}
}
