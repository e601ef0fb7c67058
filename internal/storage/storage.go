// Package storage persists the task collection to local disk.
// Persistence is best-effort: callers treat a failed Save as a logged
// warning and keep operating on the in-memory collection.
package storage

import "github.com/tavlaboard/tavla/internal/models"

// Store is the persistence contract for the task collection.
// Load returns an empty slice when no data has been saved yet or the
// saved data is corrupt; it never fails the caller into a crash for
// malformed content. Save persists the full collection, including an
// empty one, so that deleting the last task survives a reload.
type Store interface {
	Load() ([]models.Task, error)
	Save(tasks []models.Task) error
}
