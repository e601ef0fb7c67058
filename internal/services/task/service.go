// Package task owns the authoritative in-memory task collection and
// mediates every mutation to it.
package task

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/storage"
)

// Service is the single source of truth for the task collection.
//
// Every mutation runs as one atomic step under the mutex: validate,
// recompute, commit, then fire a best-effort save. A failed save is
// logged and never rolls back the in-memory mutation.
type Service struct {
	mu    sync.Mutex
	store storage.Store
	tasks []models.Task

	now   func() time.Time
	newID func() string
}

// NewService creates the store and loads the previously persisted
// collection. A load failure starts the board empty rather than failing
// application startup.
func NewService(store storage.Store) *Service {
	tasks, err := store.Load()
	if err != nil {
		slog.Warn("Failed to load persisted tasks, starting empty", "error", err)
		tasks = []models.Task{}
	}

	return &Service{
		store: store,
		tasks: tasks,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// CreateTaskRequest encapsulates all caller-supplied fields for a new task.
// Status defaults to TODO and Priority to MEDIUM when left zero.
type CreateTaskRequest struct {
	ProjectID   string
	Title       string
	Description string
	Priority    models.Priority
	Status      models.Status
	StartDate   *time.Time
	DueDate     *time.Time
}

// Create constructs a task from the request, mints a fresh unique id,
// stamps both timestamps, and appends it to the collection.
func (s *Service) Create(req CreateTaskRequest) (models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Task{}, ErrEmptyTitle
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return models.Task{}, ErrInvalidPriority
	}

	status := req.Status
	if status == "" {
		status = models.StatusTodo
	}
	if !status.Valid() {
		return models.Task{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t := models.Task{
		ID:          s.newID(),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      status,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.tasks = append(s.tasks, t)
	s.persistLocked()
	return t.Clone(), nil
}

// Update merges the patch onto the task matching id, preserving the
// original ID and CreatedAt and stamping UpdatedAt.
func (s *Service) Update(id string, patch models.TaskPatch) (models.Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return models.Task{}, ErrEmptyTitle
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return models.Task{}, ErrInvalidPriority
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return models.Task{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return models.Task{}, ErrTaskNotFound
	}

	updated := patch.Apply(s.tasks[idx])
	updated.UpdatedAt = s.now()
	s.tasks[idx] = updated

	s.persistLocked()
	return updated.Clone(), nil
}

// Delete removes the task matching id
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return ErrTaskNotFound
	}

	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.persistLocked()
	return nil
}

// ReplaceAll swaps in a recomputed collection as a single atomic update.
// The reorder engine uses this to commit a drop without transient
// inconsistent states.
func (s *Service) ReplaceAll(tasks []models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = models.CloneTasks(tasks)
	s.persistLocked()
}

// Tasks returns a snapshot of the ordered collection
func (s *Service) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneTasks(s.tasks)
}

// Get returns the task matching id
func (s *Service) Get(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return models.Task{}, ErrTaskNotFound
	}
	return s.tasks[idx].Clone(), nil
}

// Len returns the number of tasks in the collection
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *Service) indexOfLocked(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// persistLocked fires a best-effort save of the current collection.
// Must be called with the mutex held so the saved snapshot matches the
// committed state.
func (s *Service) persistLocked() {
	if err := s.store.Save(models.CloneTasks(s.tasks)); err != nil {
		slog.Error("Failed to persist tasks", "error", err, "count", len(s.tasks))
	}
}
