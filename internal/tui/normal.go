package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/services/task"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in normal mode to specific handlers.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.clearNotification()

	key := msg.String()
	km := m.config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.mode = modeHelp
		return m, nil
	case km.AddTask:
		return m.handleAddTask()
	case km.EditTask:
		return m.handleEditTask()
	case km.DeleteTask:
		return m.handleDeleteTask()
	case km.ViewTask:
		return m.handleViewTask()
	case km.PrevColumn, "left":
		return m.handleNavigateLeft()
	case km.NextColumn, "right":
		return m.handleNavigateRight()
	case km.NextTask, "down":
		return m.handleNavigateDown()
	case km.PrevTask, "up":
		return m.handleNavigateUp()
	case km.MoveTaskLeft:
		return m.handleMoveTaskLeft()
	case km.MoveTaskRight:
		return m.handleMoveTaskRight()
	case km.MoveTaskUp:
		return m.handleMoveTaskUp()
	case km.MoveTaskDown:
		return m.handleMoveTaskDown()
	case km.Search:
		return m.handleEnterSearch()
	case km.OpenFilters:
		return m.handleOpenFilters()
	case km.ClearFilters:
		m.controller.ClearFilter()
		m.search.Reset()
		m.clampSelection()
		m.notify(levelInfo, "Filters cleared")
		return m, nil
	}

	return m, nil
}

// ============================================================================
// NAVIGATION
// ============================================================================

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.selectedColumn > 0 {
		m.selectedColumn--
		m.clampSelection()
	}
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.selectedColumn < len(models.AllStatuses())-1 {
		m.selectedColumn++
		m.clampSelection()
	}
	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.selectedTask > 0 {
		m.selectedTask--
	}
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	if m.selectedTask < len(m.currentTasks())-1 {
		m.selectedTask++
	}
	return m, nil
}

// ============================================================================
// TASK MOVEMENT
//
// Keyboard moves synthesize the same drop payload a pointer gesture
// would produce; the controller treats both identically.
// ============================================================================

func (m Model) handleMoveTaskLeft() (tea.Model, tea.Cmd) {
	return m.moveAcross(m.currentStatus().Prev())
}

func (m Model) handleMoveTaskRight() (tea.Model, tea.Cmd) {
	return m.moveAcross(m.currentStatus().Next())
}

// moveAcross moves the selected task to the end of the target column
func (m Model) moveAcross(target models.Status) (tea.Model, tea.Cmd) {
	current := m.currentTask()
	if current == nil || target == m.currentStatus() {
		return m, nil
	}

	destIndex := len(m.controller.Column(target))
	changed := m.controller.HandleDrop(models.DropResult{
		TaskID:      current.ID,
		Source:      models.DropPosition{Status: m.currentStatus(), Index: m.selectedTask},
		Destination: &models.DropPosition{Status: target, Index: destIndex},
	})
	if changed {
		// Follow the task into its new column
		for i, status := range models.AllStatuses() {
			if status == target {
				m.selectedColumn = i
			}
		}
		m.selectedTask = destIndex
		m.clampSelection()
	}
	return m, nil
}

func (m Model) handleMoveTaskUp() (tea.Model, tea.Cmd) {
	return m.moveWithin(m.selectedTask - 1)
}

func (m Model) handleMoveTaskDown() (tea.Model, tea.Cmd) {
	return m.moveWithin(m.selectedTask + 1)
}

// moveWithin reorders the selected task inside its own column
func (m Model) moveWithin(destIndex int) (tea.Model, tea.Cmd) {
	current := m.currentTask()
	if current == nil || destIndex < 0 || destIndex >= len(m.currentTasks()) {
		return m, nil
	}

	changed := m.controller.HandleDrop(models.DropResult{
		TaskID:      current.ID,
		Source:      models.DropPosition{Status: m.currentStatus(), Index: m.selectedTask},
		Destination: &models.DropPosition{Status: m.currentStatus(), Index: destIndex},
	})
	if changed {
		m.selectedTask = destIndex
	}
	return m, nil
}

// ============================================================================
// TASK ACTIONS
// ============================================================================

func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	form := newTaskForm(m.controller.Projects(), nil)
	m.form = &form
	m.mode = modeForm
	return m, form.Focus()
}

func (m Model) handleEditTask() (tea.Model, tea.Cmd) {
	current := m.currentTask()
	if current == nil {
		return m, nil
	}
	form := newTaskForm(m.controller.Projects(), current)
	m.form = &form
	m.mode = modeForm
	return m, form.Focus()
}

func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	current := m.currentTask()
	if current == nil {
		return m, nil
	}
	m.confirmID = current.ID
	m.mode = modeConfirmDelete
	return m, nil
}

func (m Model) handleViewTask() (tea.Model, tea.Cmd) {
	current := m.currentTask()
	if current == nil {
		return m, nil
	}
	m.viewTaskID = current.ID
	m.mode = modeViewTask
	return m, nil
}

// ============================================================================
// CONFIRMATION AND OVERLAY MODES
// ============================================================================

func (m Model) handleConfirmDeleteMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		if err := m.controller.DeleteTask(m.confirmID); err != nil && !errors.Is(err, task.ErrTaskNotFound) {
			m.notify(levelError, "Failed to delete task")
		}
		m.confirmID = ""
		m.mode = modeNormal
		m.clampSelection()
		return m, nil
	case "n", "N", "esc":
		m.confirmID = ""
		m.mode = modeNormal
		return m, nil
	}
	return m, nil
}

func (m Model) handleViewTaskMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", m.config.KeyMappings.ViewTask:
		m.viewTaskID = ""
		m.mode = modeNormal
	}
	return m, nil
}

func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", m.config.KeyMappings.ShowHelp:
		m.mode = modeNormal
	}
	return m, nil
}
