package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/services/task"
)

// ============================================================================
// TASK FORM MODE
//
// One form serves both create and edit. On save an edit submits a patch
// covering every field, mirroring the form's full-replace behavior while
// the store still preserves id and creation time.
// ============================================================================

const (
	formFieldTitle = iota
	formFieldDescription
	formFieldProject
	formFieldPriority
	formFieldStart
	formFieldDue
	formFieldCount
)

type taskForm struct {
	inputs [formFieldCount]textinput.Model
	focus  int
	taskID string // empty while creating
}

func newTaskForm(projects []models.Project, editing *models.Task) taskForm {
	f := taskForm{}

	projectHint := "Project id"
	if len(projects) > 0 {
		projectHint = "Project id (e.g. " + projects[0].ID + " = " + projects[0].Name + ")"
	}
	labels := [formFieldCount]string{
		"Title",
		"Description (markdown)",
		projectHint,
		"Priority: LOW, MEDIUM, HIGH or URGENT",
		"Start date (YYYY-MM-DD)",
		"Due date (YYYY-MM-DD)",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		f.inputs[i] = ti
	}
	f.inputs[formFieldTitle].CharLimit = 255

	if editing != nil {
		f.taskID = editing.ID
		f.inputs[formFieldTitle].SetValue(editing.Title)
		f.inputs[formFieldDescription].SetValue(editing.Description)
		f.inputs[formFieldProject].SetValue(editing.ProjectID)
		f.inputs[formFieldPriority].SetValue(string(editing.Priority))
		if editing.StartDate != nil {
			f.inputs[formFieldStart].SetValue(editing.StartDate.Format("2006-01-02"))
		}
		if editing.DueDate != nil {
			f.inputs[formFieldDue].SetValue(editing.DueDate.Format("2006-01-02"))
		}
	}

	return f
}

// Focus focuses the title field
func (f *taskForm) Focus() tea.Cmd {
	f.focus = formFieldTitle
	return f.inputs[formFieldTitle].Focus()
}

func (f *taskForm) cycle(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + formFieldCount) % formFieldCount
	return f.inputs[f.focus].Focus()
}

func (f *taskForm) editing() bool {
	return f.taskID != ""
}

// priority parses the priority field, defaulting to MEDIUM
func (f *taskForm) priority() models.Priority {
	p, err := models.ParsePriority(f.inputs[formFieldPriority].Value())
	if err != nil {
		return models.PriorityMedium
	}
	return p
}

// createRequest builds the payload for a new task
func (f *taskForm) createRequest() task.CreateTaskRequest {
	return task.CreateTaskRequest{
		ProjectID:   f.inputs[formFieldProject].Value(),
		Title:       f.inputs[formFieldTitle].Value(),
		Description: f.inputs[formFieldDescription].Value(),
		Priority:    f.priority(),
		StartDate:   models.ParseDate(f.inputs[formFieldStart].Value()),
		DueDate:     models.ParseDate(f.inputs[formFieldDue].Value()),
	}
}

// patch builds the full-field patch for an edited task
func (f *taskForm) patch() models.TaskPatch {
	projectID := f.inputs[formFieldProject].Value()
	title := f.inputs[formFieldTitle].Value()
	description := f.inputs[formFieldDescription].Value()
	priority := f.priority()

	p := models.TaskPatch{
		ProjectID:   &projectID,
		Title:       &title,
		Description: &description,
		Priority:    &priority,
	}

	if start := models.ParseDate(f.inputs[formFieldStart].Value()); start != nil {
		p.StartDate = start
	} else {
		p.ClearStartDate = true
	}
	if due := models.ParseDate(f.inputs[formFieldDue].Value()); due != nil {
		p.DueDate = due
	} else {
		p.ClearDueDate = true
	}

	return p
}

// ============================================================================
// FORM MODE HANDLER
// ============================================================================

func (m Model) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings

	switch msg.String() {
	case "esc":
		m.form = nil
		m.mode = modeNormal
		return m, nil
	case km.SaveForm, "enter":
		return m.handleFormSave()
	case "tab", "down":
		return m, m.form.cycle(1)
	case "shift+tab", "up":
		return m, m.form.cycle(-1)
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m Model) handleFormSave() (tea.Model, tea.Cmd) {
	var err error
	if m.form.editing() {
		_, err = m.controller.UpdateTask(m.form.taskID, m.form.patch())
	} else {
		_, err = m.controller.CreateTask(m.form.createRequest())
	}

	switch {
	case errors.Is(err, task.ErrEmptyTitle):
		m.notify(levelError, "Title is required")
		return m, nil
	case err != nil:
		m.notify(levelError, "Failed to save task")
		return m, nil
	}

	m.form = nil
	m.mode = modeNormal
	m.clampSelection()
	return m, nil
}
