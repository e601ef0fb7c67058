package tui

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/tavlaboard/tavla/internal/models"
)

// ============================================================================
// FILTER FORM MODE
//
// "f" opens a small form for the non-search criteria: project, priority,
// and the due-date range. Values are free text and parsed leniently; an
// unreadable date simply leaves that bound unset.
// ============================================================================

const (
	filterFieldProject = iota
	filterFieldPriority
	filterFieldFrom
	filterFieldTo
	filterFieldCount
)

type filterForm struct {
	inputs [filterFieldCount]textinput.Model
	focus  int
}

func newFilterForm(current models.Filter) *filterForm {
	f := &filterForm{}

	labels := [filterFieldCount]string{
		"Project id (empty for all)",
		"Priority: LOW, MEDIUM, HIGH or URGENT",
		"Due from (YYYY-MM-DD)",
		"Due to (YYYY-MM-DD)",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 40
		f.inputs[i] = ti
	}

	f.inputs[filterFieldProject].SetValue(current.ProjectID)
	f.inputs[filterFieldPriority].SetValue(string(current.Priority))
	if current.DueFrom != nil {
		f.inputs[filterFieldFrom].SetValue(current.DueFrom.Format("2006-01-02"))
	}
	if current.DueTo != nil {
		f.inputs[filterFieldTo].SetValue(current.DueTo.Format("2006-01-02"))
	}

	return f
}

// Focus focuses the first field
func (f *filterForm) Focus() tea.Cmd {
	f.focus = 0
	return f.inputs[0].Focus()
}

// cycle moves focus by delta, wrapping around
func (f *filterForm) cycle(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + filterFieldCount) % filterFieldCount
	return f.inputs[f.focus].Focus()
}

// criteria builds the filter from the form, keeping the search term
// managed by the search bar. An unparseable priority or date is treated
// as absent rather than failing the form.
func (f *filterForm) criteria(search string) models.Filter {
	filter := models.Filter{Search: search}
	filter.ProjectID = f.inputs[filterFieldProject].Value()

	if p, err := models.ParsePriority(f.inputs[filterFieldPriority].Value()); err == nil {
		filter.Priority = p
	}

	filter.DueFrom = models.ParseDate(f.inputs[filterFieldFrom].Value())
	filter.DueTo = models.ParseDate(f.inputs[filterFieldTo].Value())
	return filter
}

func (m Model) handleOpenFilters() (tea.Model, tea.Cmd) {
	m.filters = newFilterForm(m.controller.Filter())
	m.mode = modeFilters
	return m, m.filters.Focus()
}

func (m Model) handleFiltersMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.controller.SetFilter(m.filters.criteria(m.search.Value()))
		m.filters = nil
		m.mode = modeNormal
		m.clampSelection()
		return m, nil
	case "esc":
		m.filters = nil
		m.mode = modeNormal
		return m, nil
	case "tab", "down":
		return m, m.filters.cycle(1)
	case "shift+tab", "up":
		return m, m.filters.cycle(-1)
	}

	var cmd tea.Cmd
	m.filters.inputs[m.filters.focus], cmd = m.filters.inputs[m.filters.focus].Update(msg)
	return m, cmd
}
