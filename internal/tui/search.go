package tui

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// ============================================================================
// SEARCH MODE
//
// "/" opens an incremental title search. Every keystroke re-applies the
// filter so the board narrows as the user types; esc clears it.
// ============================================================================

type searchState struct {
	input textinput.Model
}

func newSearchState() searchState {
	ti := textinput.New()
	ti.Placeholder = "Search by title"
	ti.CharLimit = 100
	return searchState{input: ti}
}

// Reset clears the search text
func (s *searchState) Reset() {
	s.input.SetValue("")
	s.input.Blur()
}

// Value returns the current search term
func (s searchState) Value() string {
	return s.input.Value()
}

func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	m.mode = modeSearch
	return m, m.search.input.Focus()
}

func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.input.Blur()
		m.mode = modeNormal
		return m, nil
	case "esc":
		m.search.Reset()
		m.applySearch()
		m.mode = modeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	m.applySearch()
	return m, cmd
}

// applySearch folds the search term into the active filter
func (m *Model) applySearch() {
	filter := m.controller.Filter()
	filter.Search = m.search.Value()
	m.controller.SetFilter(filter)
	m.clampSelection()
}
