// Package cmd wires the command-line interface. The bare binary opens
// the interactive board; subcommands cover scripted task management.
package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/tavlaboard/tavla/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "tavla",
	Short: "Tavla - a terminal kanban board",
	Long:  `Tavla is a terminal kanban board for managing tasks across TODO, IN PROGRESS, IN REVIEW and DONE columns.`,
	RunE:  runBoard,
}

func Execute() error {
	return rootCmd.Execute()
}

func runBoard(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	model := tui.NewModel(app.Config, app.Board)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}
