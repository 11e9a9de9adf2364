package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/assetscan/assetscan/internal/config"
	"github.com/assetscan/assetscan/internal/database"
	"github.com/assetscan/assetscan/internal/model"
)

// defaultHistoryLimit caps the number of runs printed without --limit.
const defaultHistoryLimit = 20

// NewHistoryCmd creates the history command.
// It lists scan-run summaries recorded in the history database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [project-name]",
		Short: "Show recorded scan runs",
		Long: `History lists past scan runs recorded in the local database.

Every scan records its summary figures (declared and unused asset counts,
total and wasted bytes, bytes freed and saved by optimization). History
makes waste visible over time; it never influences scanning itself.

Examples:
  # Show the most recent runs across all projects
  assetscan history

  # Show runs for one project
  assetscan history example_app

  # Show more rows
  assetscan history --limit 100`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", defaultHistoryLimit,
		"Maximum number of runs to show")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	var project string
	if len(args) > 0 {
		project = args[0]
	}

	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	runs, err := db.ListRuns(context.Background(), project, limit)
	if err != nil {
		return fmt.Errorf("failed to list scan history: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No scan history recorded yet. Run 'assetscan scan' first.")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, run := range runs {
		fmt.Fprintf(out, "[%d] %s  %s\n", run.ID,
			run.Timestamp.Local().Format("2006-01-02 15:04"), run.Project)
		fmt.Fprintf(out, "    declared: %d  unused: %d  total: %s  wasted: %s\n",
			run.DeclaredCount, run.UnusedCount,
			model.FormatSize(run.TotalBytes), model.FormatSize(run.WastedBytes))
		if run.Optimized {
			fmt.Fprintf(out, "    freed: %s  saved: %s\n",
				model.FormatSize(run.BytesFreed), model.FormatSize(run.BytesSaved))
		}
	}

	return nil
}
