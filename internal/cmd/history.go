package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/doclint/internal/config"
	"github.com/harrison/doclint/internal/history"
)

// NewHistoryCommand creates the 'doclint history' parent command
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List and manage recorded validation runs",
		Long: `Commands for viewing and managing the run-history database.

Without a subcommand, lists the most recent validation runs.`,
		RunE:         runHistoryList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 20, "Maximum number of runs to list")

	cmd.AddCommand(newHistoryClearCommand())

	return cmd
}

// runHistoryList prints the most recent validation runs
func runHistoryList(cmd *cobra.Command, args []string) error {
	output := cmd.OutOrStdout()
	limit, _ := cmd.Flags().GetInt("limit")

	store, dbPath, err := openHistoryStore(cmd)
	if err != nil {
		return err
	}
	if store == nil {
		fmt.Fprintf(output, "No run history found\nDatabase path: %s\n", dbPath)
		return nil
	}
	defer store.Close()

	runs, err := store.RecentRuns(limit)
	if err != nil {
		return fmt.Errorf("load runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(output, "No run history found")
		return nil
	}

	printRuns(output, runs)
	return nil
}

// printRuns renders the run list, newest first
func printRuns(output io.Writer, runs []history.Run) {
	fmt.Fprintf(output, "Recent validation runs (%d):\n\n", len(runs))
	for _, r := range runs {
		verdict := "PASS"
		if !r.Passed {
			verdict = fmt.Sprintf("FAIL (%d violation(s))", r.ViolationCount)
		}
		fmt.Fprintf(output, "  %s  %s  %s\n", r.Timestamp.Local().Format("2006-01-02 15:04:05"), verdict, r.TargetPath)
		fmt.Fprintf(output, "    id: %s  documents: %d  principles: %d\n", r.ID, r.DocumentCount, r.PrincipleCount)
	}
}

// openHistoryStore resolves the configured database path and opens the
// store. Returns a nil store (and the resolved path) when the database
// file does not exist yet.
func openHistoryStore(cmd *cobra.Command) (*history.Store, string, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, "", err
	}

	dbPath := cfg.History.DBPath
	if dbPath == "" {
		dbPath, err = config.GetHistoryDBPath()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get history database path: %w", err)
		}
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, dbPath, nil
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return nil, dbPath, fmt.Errorf("open history store: %w", err)
	}
	return store, dbPath, nil
}
