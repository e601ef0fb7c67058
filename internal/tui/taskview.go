package tui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/glamour"
)

// ============================================================================
// TASK DETAIL VIEW
// ============================================================================

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

func (m Model) viewTaskDetail() string {
	task, err := m.controller.Task(m.viewTaskID)
	if err != nil {
		return m.centered(m.styles.dialog.Render(m.styles.subtle.Render("Task no longer exists")))
	}

	width := m.width / 2
	if width < 40 {
		width = 40
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(task.Title))
	b.WriteString("\n\n")

	b.WriteString(m.metadataLine("Project", m.controller.Project(task.ProjectID).Name))
	b.WriteString(m.metadataLine("Status", task.Status.Display()))
	b.WriteString(m.metadataLine("Priority", task.Priority.Display()))
	b.WriteString(m.metadataLine("Start", formatOptionalDate(task.StartDate)))
	b.WriteString(m.metadataLine("Due", formatOptionalDate(task.DueDate)))
	b.WriteString(m.metadataLine("Created", task.CreatedAt.Format("2006-01-02 15:04")))
	b.WriteString(m.metadataLine("Updated", task.UpdatedAt.Format("2006-01-02 15:04")))
	b.WriteString("\n")
	b.WriteString(m.renderDescription(task.Description, width-6))

	box := m.styles.dialog.Width(width).Render(b.String())
	return m.centered(box)
}

func (m Model) metadataLine(label, value string) string {
	return fmt.Sprintf("%s %s\n",
		m.styles.subtle.Render(fmt.Sprintf("%-9s", label+":")),
		m.styles.normal.Render(value))
}

// renderDescription renders the task description as markdown, falling
// back to the raw text if the renderer fails.
func (m Model) renderDescription(description string, width int) string {
	if description == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.scheme.Subtle)).
			Italic(true).
			Render("No description")
	}

	renderer, err := markdownRenderer(width)
	if err == nil {
		if rendered, err := renderer.Render(description); err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return description
}

func formatOptionalDate(d *time.Time) string {
	if d == nil {
		return "Not set"
	}
	return d.Format("2006-01-02")
}
