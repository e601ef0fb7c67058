package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavlaboard/tavla/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func sampleTasks() []models.Task {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 2, 20, 9, 30, 0, 0, time.UTC)

	return []models.Task{
		{
			ID:          "t1",
			ProjectID:   "1",
			Title:       "Design homepage layout",
			Description: "Create wireframes and mockups",
			Priority:    models.PriorityHigh,
			Status:      models.StatusTodo,
			StartDate:   &start,
			DueDate:     &due,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:        "t2",
			ProjectID: "2",
			Title:     "User authentication",
			Priority:  models.PriorityUrgent,
			Status:    models.StatusInReview,
			CreatedAt: created,
			UpdatedAt: created.Add(time.Hour),
		},
	}
}

func assertTasksEqual(t *testing.T, want, got []models.Task) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].ProjectID, got[i].ProjectID)
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.Equal(t, want[i].Priority, got[i].Priority)
		assert.Equal(t, want[i].Status, got[i].Status)
		assertDateEqual(t, want[i].StartDate, got[i].StartDate)
		assertDateEqual(t, want[i].DueDate, got[i].DueDate)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt), "CreatedAt mismatch for %s", want[i].ID)
		assert.True(t, want[i].UpdatedAt.Equal(got[i].UpdatedAt), "UpdatedAt mismatch for %s", want[i].ID)
	}
}

func assertDateEqual(t *testing.T, want, got *time.Time) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	assert.True(t, want.Equal(*got))
}

// ============================================================================
// JSON Store Tests
// ============================================================================

func TestJSONStore_RoundTrip(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "tasks.json"))
	want := sampleTasks()

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assertTasksEqual(t, want, got)
}

func TestJSONStore_LoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "does-not-exist.json"))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestJSONStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	got, err := NewJSONStore(path).Load()
	require.NoError(t, err, "corrupt data must not surface as an error")
	assert.Empty(t, got)
}

func TestJSONStore_SkipsRecordsWithUnknownEnums(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	doc := `[
		{"id":"good","projectId":"1","title":"ok","priority":"LOW","status":"TODO",
		 "createdAt":"2024-02-20T09:30:00Z","updatedAt":"2024-02-20T09:30:00Z"},
		{"id":"bad","projectId":"1","title":"nope","priority":"CRITICAL","status":"TODO",
		 "createdAt":"2024-02-20T09:30:00Z","updatedAt":"2024-02-20T09:30:00Z"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	got, err := NewJSONStore(path).Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "good", got[0].ID)
}

func TestJSONStore_SavesEmptyCollection(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "tasks.json"))
	require.NoError(t, store.Save(sampleTasks()))

	// Deleting the last task must persist the empty board
	require.NoError(t, store.Save([]models.Task{}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestJSONStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.json")
	store := NewJSONStore(path)

	require.NoError(t, store.Save(sampleTasks()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
