package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.handleSearchMode(msg)
		case modeFilters:
			return m.handleFiltersMode(msg)
		case modeForm:
			return m.handleFormMode(msg)
		case modeConfirmDelete:
			return m.handleConfirmDeleteMode(msg)
		case modeViewTask:
			return m.handleViewTaskMode(msg)
		case modeHelp:
			return m.handleHelpMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	return m, nil
}
