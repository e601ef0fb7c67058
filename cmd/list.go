package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tavlaboard/tavla/internal/models"
)

func init() {
	rootCmd.AddCommand(listCmd())
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the board",
		Long: `Print the board to stdout, column by column.

Filter flags combine with AND semantics, matching the interactive board.

Examples:
  tavla list
  tavla list --search=login --priority=high
  tavla list --from=2026-08-01 --to=2026-08-31
`,
		RunE: runList,
	}

	cmd.Flags().String("search", "", "Case-insensitive substring match against titles")
	cmd.Flags().String("project", "", "Exact project id")
	cmd.Flags().String("priority", "", "Priority: low, medium, high, urgent")
	cmd.Flags().String("from", "", "Date range lower bound (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Date range upper bound (YYYY-MM-DD)")
	cmd.Flags().String("status", "", "Limit output to a single column")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}
	app.Board.SetFilter(filter)

	statuses := models.AllStatuses()
	if raw, _ := cmd.Flags().GetString("status"); raw != "" {
		status, err := models.ParseStatus(raw)
		if err != nil {
			return fmt.Errorf("unknown status %q", raw)
		}
		statuses = []models.Status{status}
	}

	out := cmd.OutOrStdout()
	for i, status := range statuses {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printColumn(out, status, app)
	}
	return nil
}

func filterFromFlags(cmd *cobra.Command) (models.Filter, error) {
	var filter models.Filter
	filter.Search, _ = cmd.Flags().GetString("search")
	filter.ProjectID, _ = cmd.Flags().GetString("project")

	if raw, _ := cmd.Flags().GetString("priority"); raw != "" {
		p, err := models.ParsePriority(raw)
		if err != nil {
			return models.Filter{}, fmt.Errorf("unknown priority %q", raw)
		}
		filter.Priority = p
	}

	var err error
	if filter.DueFrom, err = dateFlag(cmd, "from"); err != nil {
		return models.Filter{}, err
	}
	if filter.DueTo, err = dateFlag(cmd, "to"); err != nil {
		return models.Filter{}, err
	}
	return filter, nil
}

func dateFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return nil, nil
	}
	d := models.ParseDate(raw)
	if d == nil {
		return nil, fmt.Errorf("invalid --%s date %q, want YYYY-MM-DD", name, raw)
	}
	return d, nil
}

func printColumn(out io.Writer, status models.Status, app *App) {
	tasks := app.Board.Column(status)
	fmt.Fprintf(out, "%s (%d)\n", status.Display(), len(tasks))
	if len(tasks) == 0 {
		fmt.Fprintln(out, "  (no tasks)")
		return
	}
	for _, t := range tasks {
		line := fmt.Sprintf("  [%s] %s", t.Priority.Display(), t.Title)
		if t.DueDate != nil {
			line += fmt.Sprintf("  due %s", t.DueDate.Format("2006-01-02"))
		}
		fmt.Fprintln(out, line)
		if t.ProjectID != "" {
			fmt.Fprintf(out, "      %s\n", app.Board.Project(t.ProjectID).Name)
		}
	}
}
