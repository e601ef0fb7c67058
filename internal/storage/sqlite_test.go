package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavlaboard/tavla/internal/models"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Failed to close store: %v", err)
		}
	})
	return store
}

// ============================================================================
// SQLite Store Tests
// ============================================================================

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := setupSQLiteStore(t)
	want := sampleTasks()

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assertTasksEqual(t, want, got)
}

func TestSQLiteStore_LoadEmptyDatabase(t *testing.T) {
	store := setupSQLiteStore(t)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteStore_SavePreservesCollectionOrder(t *testing.T) {
	store := setupSQLiteStore(t)
	tasks := sampleTasks()

	// Save twice with the order reversed; the last write wins
	require.NoError(t, store.Save(tasks))
	reversed := []models.Task{tasks[1], tasks[0]}
	require.NoError(t, store.Save(reversed))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "t2", got[0].ID)
	assert.Equal(t, "t1", got[1].ID)
}

func TestSQLiteStore_SavesEmptyCollection(t *testing.T) {
	store := setupSQLiteStore(t)
	require.NoError(t, store.Save(sampleTasks()))

	require.NoError(t, store.Save([]models.Task{}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}
