package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/services/task"
)

func init() {
	rootCmd.AddCommand(addCmd())
}

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new task without opening the board.

Examples:
  tavla add --title="Fix login redirect"
  tavla add --title="Ship v2" --priority=urgent --status=in-progress --due=2026-09-15
`,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	_ = cmd.MarkFlagRequired("title")

	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("project", "", "Project id")
	cmd.Flags().String("priority", "", "Priority: low, medium, high, urgent")
	cmd.Flags().String("status", "", "Status: todo, in-progress, in-review, done")
	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	projectID, _ := cmd.Flags().GetString("project")
	start, _ := cmd.Flags().GetString("start")
	due, _ := cmd.Flags().GetString("due")

	req := task.CreateTaskRequest{
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		StartDate:   models.ParseDate(start),
		DueDate:     models.ParseDate(due),
	}

	if raw, _ := cmd.Flags().GetString("priority"); raw != "" {
		p, err := models.ParsePriority(raw)
		if err != nil {
			return fmt.Errorf("unknown priority %q", raw)
		}
		req.Priority = p
	}
	if raw, _ := cmd.Flags().GetString("status"); raw != "" {
		s, err := models.ParseStatus(raw)
		if err != nil {
			return fmt.Errorf("unknown status %q", raw)
		}
		req.Status = s
	}

	created, err := app.Board.CreateTask(req)
	if err != nil {
		if errors.Is(err, task.ErrEmptyTitle) {
			return errors.New("title must not be empty")
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created task %s (%s)\n", created.ID, created.Title)
	return nil
}
