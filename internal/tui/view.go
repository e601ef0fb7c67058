package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/tavlaboard/tavla/internal/models"
)

// View renders the current state of the application
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case modeForm:
		return m.viewForm()
	case modeFilters:
		return m.viewFilters()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	case modeViewTask:
		return m.viewTaskDetail()
	case modeHelp:
		return m.viewHelp()
	}

	return m.viewBoard()
}

// ============================================================================
// BOARD
// ============================================================================

func (m Model) viewBoard() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Tavla"))
	if filter := m.describeFilter(); filter != "" {
		b.WriteString("  ")
		b.WriteString(m.styles.filterActive.Render(filter))
	}
	b.WriteString("\n\n")

	columns := make([]string, 0, 4)
	for i, status := range models.AllStatuses() {
		columns = append(columns, m.renderColumn(status, i == m.selectedColumn))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")

	if m.mode == modeSearch {
		b.WriteString(m.search.input.View())
		b.WriteString("\n")
	}

	switch m.notifyLevel {
	case levelInfo:
		b.WriteString(m.styles.notifyInfo.Render(m.notifyText))
		b.WriteString("\n")
	case levelError:
		b.WriteString(m.styles.notifyError.Render(m.notifyText))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.subtle.Render(m.shortHelp()))
	return b.String()
}

func (m Model) renderColumn(status models.Status, selected bool) string {
	tasks := m.controller.Column(status)

	headerStyle := m.styles.columnHeader.
		Foreground(lipgloss.Color(m.styles.scheme.StatusColor(status)))
	header := headerStyle.Render(fmt.Sprintf("%s (%d)", status.Display(), len(tasks)))

	parts := []string{header}
	if len(tasks) == 0 {
		parts = append(parts, m.styles.subtle.Render("No tasks"))
	}
	for i, task := range tasks {
		parts = append(parts, m.renderCard(task, selected && i == m.selectedTask))
	}

	column := m.styles.column
	if selected {
		column = column.BorderForeground(lipgloss.Color(m.styles.scheme.Accent))
	}
	return column.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) renderCard(task models.Task, selected bool) string {
	var b strings.Builder

	b.WriteString(m.styles.normal.Bold(true).Render(task.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.subtle.Render(m.controller.Project(task.ProjectID).Name))
	b.WriteString("\n")

	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.scheme.PriorityColor(task.Priority))).
		Render(task.Priority.Display())
	b.WriteString(badge)

	if task.DueDate != nil {
		due := "due " + task.DueDate.Format("Jan 2")
		style := m.styles.subtle
		if task.DueDate.Before(time.Now()) && task.Status != models.StatusDone {
			style = m.styles.notifyError
		}
		b.WriteString("  ")
		b.WriteString(style.Render(due))
	}

	card := m.styles.card
	if selected {
		card = m.styles.selectedCard
	}
	return card.Render(b.String())
}

// describeFilter summarizes the active criteria for the header line
func (m Model) describeFilter() string {
	f := m.controller.Filter()
	if !f.Active() {
		return ""
	}

	parts := []string{}
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("title~%q", f.Search))
	}
	if f.ProjectID != "" {
		parts = append(parts, "project "+m.controller.Project(f.ProjectID).Name)
	}
	if f.Priority != "" {
		parts = append(parts, "priority "+f.Priority.Display())
	}
	if f.DueFrom != nil {
		parts = append(parts, "from "+f.DueFrom.Format("2006-01-02"))
	}
	if f.DueTo != nil {
		parts = append(parts, "to "+f.DueTo.Format("2006-01-02"))
	}
	return "filtered: " + strings.Join(parts, ", ")
}

func (m Model) shortHelp() string {
	km := m.config.KeyMappings
	return fmt.Sprintf("%s add  %s edit  %s delete  %s search  %s filters  %s help  %s quit",
		km.AddTask, km.EditTask, km.DeleteTask, km.Search, km.OpenFilters, km.ShowHelp, km.Quit)
}

// ============================================================================
// DIALOGS
// ============================================================================

func (m Model) viewForm() string {
	title := "New Task"
	if m.form.editing() {
		title = "Edit Task"
	}

	parts := []string{m.styles.title.Render(title), ""}
	labels := []string{"Title", "Description", "Project", "Priority", "Start date", "Due date"}
	for i := range m.form.inputs {
		parts = append(parts, m.styles.subtle.Render(labels[i]), m.form.inputs[i].View())
	}
	parts = append(parts, "", m.styles.subtle.Render("enter save  tab next field  esc cancel"))

	return m.centered(m.styles.dialog.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
}

func (m Model) viewFilters() string {
	parts := []string{m.styles.title.Render("Filters"), ""}
	labels := []string{"Project", "Priority", "Due from", "Due to"}
	for i := range m.filters.inputs {
		parts = append(parts, m.styles.subtle.Render(labels[i]), m.filters.inputs[i].View())
	}
	parts = append(parts, "", m.styles.subtle.Render("enter apply  tab next field  esc cancel"))

	return m.centered(m.styles.dialog.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
}

func (m Model) viewConfirmDelete() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("Delete task?"),
		"",
		m.styles.normal.Render("This cannot be undone."),
		"",
		m.styles.subtle.Render("y delete  n cancel"),
	)
	return m.centered(m.styles.dialog.Render(content))
}

func (m Model) viewHelp() string {
	km := m.config.KeyMappings
	rows := [][2]string{
		{km.AddTask, "add task"},
		{km.EditTask, "edit task"},
		{km.DeleteTask, "delete task"},
		{strings.TrimSpace(km.ViewTask) + " (space)", "view task"},
		{km.PrevColumn + "/" + km.NextColumn, "previous/next column"},
		{km.PrevTask + "/" + km.NextTask, "previous/next task"},
		{km.MoveTaskLeft + "/" + km.MoveTaskRight, "move task across columns"},
		{km.MoveTaskUp + "/" + km.MoveTaskDown, "reorder task within column"},
		{km.Search, "search titles"},
		{km.OpenFilters, "open filters"},
		{km.ClearFilters, "clear filters"},
		{km.Quit, "quit"},
	}

	parts := []string{m.styles.title.Render("Key Bindings"), ""}
	for _, row := range rows {
		parts = append(parts, fmt.Sprintf("%s  %s",
			m.styles.normal.Bold(true).Render(fmt.Sprintf("%-8s", row[0])),
			m.styles.subtle.Render(row[1])))
	}

	return m.centered(m.styles.dialog.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
}

func (m Model) centered(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
