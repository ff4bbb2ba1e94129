package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the 'doclint stats' command
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate violation statistics",
		Long: `Display aggregate statistics over all recorded validation runs:
  - Total runs and pass rate
  - Violation counts per rule`,
		RunE:         runStats,
		SilenceUsage: true,
	}

	return cmd
}

// runStats executes the stats command
func runStats(cmd *cobra.Command, args []string) error {
	output := cmd.OutOrStdout()

	store, dbPath, err := openHistoryStore(cmd)
	if err != nil {
		return err
	}
	if store == nil {
		fmt.Fprintf(output, "No run history found\nDatabase path: %s\n", dbPath)
		return nil
	}
	defer store.Close()

	total, err := store.TotalRuns()
	if err != nil {
		return fmt.Errorf("count runs: %w", err)
	}
	if total == 0 {
		fmt.Fprintln(output, "No run history found")
		return nil
	}

	runs, err := store.RecentRuns(total)
	if err != nil {
		return fmt.Errorf("load runs: %w", err)
	}

	passed := 0
	for _, r := range runs {
		if r.Passed {
			passed++
		}
	}

	counts, err := store.RuleCounts()
	if err != nil {
		return fmt.Errorf("load rule counts: %w", err)
	}

	bold := color.New(color.Bold)
	bold.Fprintln(output, "Validation Statistics")
	fmt.Fprintf(output, "\nTotal runs:  %d\n", total)
	fmt.Fprintf(output, "Passed:      %d (%.1f%%)\n", passed, float64(passed)/float64(total)*100)
	fmt.Fprintf(output, "Failed:      %d\n", total-passed)

	if len(counts) > 0 {
		fmt.Fprintln(output, "\nViolations by rule:")
		for _, rc := range counts {
			fmt.Fprintf(output, "  %-28s %d\n", rc.Rule, rc.Count)
		}
	}

	return nil
}
