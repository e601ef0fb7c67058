package config

import "github.com/tavlaboard/tavla/internal/models"

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	SelectedBorder string `yaml:"selected_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Semantic
	Overdue string `yaml:"overdue"`

	// Column header accents, one per status
	StatusTodo       string `yaml:"status_todo"`
	StatusInProgress string `yaml:"status_in_progress"`
	StatusInReview   string `yaml:"status_in_review"`
	StatusDone       string `yaml:"status_done"`

	// Priority badge colors
	PriorityLow    string `yaml:"priority_low"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityHigh   string `yaml:"priority_high"`
	PriorityUrgent string `yaml:"priority_urgent"`
}

// DefaultColorScheme returns the default purple theme
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Accent: "#874BFD",

		ColumnBorder:   "#5F87D7",
		TaskBorder:     "#585858",
		SelectedBorder: "#D75FD7",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Overdue: "#FF5F5F",

		StatusTodo:       "#8A8A8A",
		StatusInProgress: "#5F87D7",
		StatusInReview:   "#AF87FF",
		StatusDone:       "#5FD75F",

		PriorityLow:    "#5FD75F",
		PriorityMedium: "#EAB308",
		PriorityHigh:   "#F97316",
		PriorityUrgent: "#FF5F5F",
	}
}

// StatusColor returns the header accent for a board column.
// The switch is exhaustive over the four statuses.
func (c ColorScheme) StatusColor(s models.Status) string {
	switch s {
	case models.StatusTodo:
		return c.StatusTodo
	case models.StatusInProgress:
		return c.StatusInProgress
	case models.StatusInReview:
		return c.StatusInReview
	case models.StatusDone:
		return c.StatusDone
	}
	return c.Normal
}

// PriorityColor returns the badge color for a priority level.
// The switch is exhaustive over the four priorities.
func (c ColorScheme) PriorityColor(p models.Priority) string {
	switch p {
	case models.PriorityLow:
		return c.PriorityLow
	case models.PriorityMedium:
		return c.PriorityMedium
	case models.PriorityHigh:
		return c.PriorityHigh
	case models.PriorityUrgent:
		return c.PriorityUrgent
	}
	return c.Normal
}

// ApplyDefaults fills in missing color values with the default scheme
func (c *ColorScheme) ApplyDefaults() {
	defaults := DefaultColorScheme()

	if c.Accent == "" {
		c.Accent = defaults.Accent
	}
	if c.ColumnBorder == "" {
		c.ColumnBorder = defaults.ColumnBorder
	}
	if c.TaskBorder == "" {
		c.TaskBorder = defaults.TaskBorder
	}
	if c.SelectedBorder == "" {
		c.SelectedBorder = defaults.SelectedBorder
	}
	if c.Title == "" {
		c.Title = defaults.Title
	}
	if c.Subtle == "" {
		c.Subtle = defaults.Subtle
	}
	if c.Normal == "" {
		c.Normal = defaults.Normal
	}
	if c.Overdue == "" {
		c.Overdue = defaults.Overdue
	}
	if c.StatusTodo == "" {
		c.StatusTodo = defaults.StatusTodo
	}
	if c.StatusInProgress == "" {
		c.StatusInProgress = defaults.StatusInProgress
	}
	if c.StatusInReview == "" {
		c.StatusInReview = defaults.StatusInReview
	}
	if c.StatusDone == "" {
		c.StatusDone = defaults.StatusDone
	}
	if c.PriorityLow == "" {
		c.PriorityLow = defaults.PriorityLow
	}
	if c.PriorityMedium == "" {
		c.PriorityMedium = defaults.PriorityMedium
	}
	if c.PriorityHigh == "" {
		c.PriorityHigh = defaults.PriorityHigh
	}
	if c.PriorityUrgent == "" {
		c.PriorityUrgent = defaults.PriorityUrgent
	}
}
