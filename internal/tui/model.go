// Package tui renders the kanban board and translates keyboard input
// into board controller actions.
package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/tavlaboard/tavla/internal/config"
	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/services/board"
)

// mode identifies which input handler owns the keyboard
type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeFilters
	modeForm
	modeConfirmDelete
	modeViewTask
	modeHelp
)

// notificationLevel classifies the transient banner below the board
type notificationLevel int

const (
	levelNone notificationLevel = iota
	levelInfo
	levelError
)

// Model represents the application state for the TUI
type Model struct {
	config     *config.Config
	controller *board.Controller
	styles     styles

	mode           mode
	selectedColumn int // index into models.AllStatuses()
	selectedTask   int // index within the selected column's view
	width          int
	height         int

	search      searchState
	filters     *filterForm
	form        *taskForm
	confirmID   string
	viewTaskID  string
	notifyLevel notificationLevel
	notifyText  string
}

// NewModel creates and initializes the TUI model
func NewModel(cfg *config.Config, controller *board.Controller) Model {
	return Model{
		config:     cfg,
		controller: controller,
		styles:     newStyles(cfg.ColorScheme),
		search:     newSearchState(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// currentStatus returns the status of the selected column
func (m Model) currentStatus() models.Status {
	return models.AllStatuses()[m.selectedColumn]
}

// currentTasks returns the selected column's visible tasks
func (m Model) currentTasks() []models.Task {
	return m.controller.Column(m.currentStatus())
}

// currentTask returns the selected task, or nil when the column is empty
func (m Model) currentTask() *models.Task {
	tasks := m.currentTasks()
	if len(tasks) == 0 || m.selectedTask >= len(tasks) {
		return nil
	}
	t := tasks[m.selectedTask]
	return &t
}

// clampSelection keeps the task cursor inside the selected column's view
func (m *Model) clampSelection() {
	count := len(m.currentTasks())
	if count == 0 {
		m.selectedTask = 0
		return
	}
	if m.selectedTask >= count {
		m.selectedTask = count - 1
	}
	if m.selectedTask < 0 {
		m.selectedTask = 0
	}
}

func (m *Model) notify(level notificationLevel, text string) {
	m.notifyLevel = level
	m.notifyText = text
}

func (m *Model) clearNotification() {
	m.notifyLevel = levelNone
	m.notifyText = ""
}
