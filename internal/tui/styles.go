package tui

import (
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/tavlaboard/tavla/internal/config"
)

const (
	columnWidth = 34
	cardWidth   = 30
)

// styles holds the lipgloss styles derived from the configured color scheme
type styles struct {
	scheme config.ColorScheme

	title  lipgloss.Style
	subtle lipgloss.Style
	normal lipgloss.Style

	column       lipgloss.Style
	columnHeader lipgloss.Style

	card         lipgloss.Style
	selectedCard lipgloss.Style

	dialog       lipgloss.Style
	notifyInfo   lipgloss.Style
	notifyError  lipgloss.Style
	filterActive lipgloss.Style
}

func newStyles(scheme config.ColorScheme) styles {
	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ColumnBorder)).
		Padding(0, 1).
		Width(columnWidth)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.TaskBorder)).
		Padding(0, 1).
		Width(cardWidth)

	return styles{
		scheme: scheme,

		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.Title)),
		subtle: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)),
		normal: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Normal)),

		column: column,
		columnHeader: lipgloss.NewStyle().
			Bold(true).
			Width(columnWidth - 4),

		card:         card,
		selectedCard: card.BorderForeground(lipgloss.Color(scheme.SelectedBorder)),

		dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Accent)).
			Padding(1, 2),

		notifyInfo: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Accent)),
		notifyError: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Overdue)),
		filterActive: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(scheme.Accent)),
	}
}
