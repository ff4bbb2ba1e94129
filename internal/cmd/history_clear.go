package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newHistoryClearCommand creates the 'doclint history clear' command
func newHistoryClearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded validation runs",
		Long: `Delete all recorded validation runs and their violations.

Prompts for confirmation unless --force is given.`,
		RunE:         runHistoryClear,
		SilenceUsage: true,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")

	return cmd
}

// runHistoryClear empties the history database
func runHistoryClear(cmd *cobra.Command, args []string) error {
	output := cmd.OutOrStdout()
	force, _ := cmd.Flags().GetBool("force")

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
		fmt.Fprintln(output, "History is already empty")
		return nil
	}

	if !force {
		fmt.Fprintf(output, "Delete %d recorded run(s)? [y/N]: ", total)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(output, "Aborted")
			return nil
		}
	}

	if err := store.Clear(); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	fmt.Fprintf(output, "Deleted %d run(s)\n", total)
	return nil
}
