package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tavlaboard/tavla/internal/models"
)

// JSONStore persists the task collection as a single JSON document.
// Date fields are serialized as RFC 3339 strings and rehydrated on load.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the file at path
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// taskRecord is the on-disk shape of a task. Field names match the
// original persisted representation.
type taskRecord struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Load reads the persisted collection. A missing file or an unparseable
// document yields an empty collection; records with unknown enum values
// are skipped rather than aborting the load.
func (s *JSONStore) Load() ([]models.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Task{}, nil
		}
		return []models.Task{}, fmt.Errorf("failed to read task file: %w", err)
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("Stored tasks are corrupt, starting with an empty board", "path", s.path, "error", err)
		return []models.Task{}, nil
	}

	tasks := make([]models.Task, 0, len(records))
	for _, r := range records {
		task, err := r.toTask()
		if err != nil {
			slog.Warn("Skipping malformed task record", "id", r.ID, "error", err)
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Save writes the full collection, including an empty one
func (s *JSONStore) Save(tasks []models.Task) error {
	records := make([]taskRecord, len(tasks))
	for i, t := range tasks {
		records[i] = toRecord(t)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write task file: %w", err)
	}
	return nil
}

func (r taskRecord) toTask() (models.Task, error) {
	status, err := models.ParseStatus(r.Status)
	if err != nil {
		return models.Task{}, err
	}
	priority, err := models.ParsePriority(r.Priority)
	if err != nil {
		return models.Task{}, err
	}

	return models.Task{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    priority,
		Status:      status,
		StartDate:   r.StartDate,
		DueDate:     r.DueDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func toRecord(t models.Task) taskRecord {
	return taskRecord{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		StartDate:   t.StartDate,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
