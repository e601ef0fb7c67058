package board

import (
	"time"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/services/project"
	"github.com/tavlaboard/tavla/internal/services/task"
)

// Controller orchestrates the task store, filter engine, and reorder
// engine in response to user actions. The presentation layer talks only
// to the controller.
type Controller struct {
	tasks    *task.Service
	projects *project.Service
	filter   models.Filter
	dateMode DateFilterMode

	now func() time.Time
}

// NewController wires the controller to its collaborators
func NewController(tasks *task.Service, projects *project.Service, mode DateFilterMode) *Controller {
	return &Controller{
		tasks:    tasks,
		projects: projects,
		dateMode: mode,
		now:      time.Now,
	}
}

// CreateTask creates a task from already-validated field values
func (c *Controller) CreateTask(req task.CreateTaskRequest) (models.Task, error) {
	return c.tasks.Create(req)
}

// UpdateTask merges a patch onto the task matching id
func (c *Controller) UpdateTask(id string, patch models.TaskPatch) (models.Task, error) {
	return c.tasks.Update(id, patch)
}

// DeleteTask removes the task matching id
func (c *Controller) DeleteTask(id string) error {
	return c.tasks.Delete(id)
}

// Task returns the task matching id
func (c *Controller) Task(id string) (models.Task, error) {
	return c.tasks.Get(id)
}

// SetFilter replaces the active filter criteria
func (c *Controller) SetFilter(f models.Filter) {
	c.filter = f
}

// ClearFilter removes all filter criteria
func (c *Controller) ClearFilter() {
	c.filter = models.Filter{}
}

// Filter returns the active filter criteria
func (c *Controller) Filter() models.Filter {
	return c.filter
}

// DateMode returns the configured date-range filter policy
func (c *Controller) DateMode() DateFilterMode {
	return c.dateMode
}

// VisibleTasks returns the filtered collection in storage order
func (c *Controller) VisibleTasks() []models.Task {
	return ApplyFilter(c.tasks.Tasks(), c.filter, c.dateMode)
}

// Column returns the ordered view of visible tasks in one column
func (c *Controller) Column(status models.Status) []models.Task {
	return TasksByStatus(c.VisibleTasks(), status)
}

// Columns returns the four column views of the visible tasks
func (c *Controller) Columns() map[models.Status][]models.Task {
	return Partition(c.VisibleTasks())
}

// HandleDrop applies a completed move gesture and commits the recomputed
// collection as a single bulk replace. Cancelled or unresolvable drops
// leave the board untouched. Returns whether the board changed.
func (c *Controller) HandleDrop(drop models.DropResult) bool {
	next, changed := ApplyDrop(c.tasks.Tasks(), c.VisibleTasks(), drop, c.now())
	if !changed {
		return false
	}
	c.tasks.ReplaceAll(next)
	return true
}

// Project resolves a project id for display, yielding an "Unknown
// Project" placeholder for dangling references.
func (c *Controller) Project(id string) models.Project {
	return c.projects.Get(id)
}

// Projects returns the reference project list
func (c *Controller) Projects() []models.Project {
	return c.projects.List()
}
