package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/doclint/internal/filelock"
	"github.com/harrison/doclint/internal/parser"
	"github.com/harrison/doclint/internal/report"
	"github.com/harrison/doclint/internal/validator"
)

// NewReportCommand creates the 'doclint report' command
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <file-or-directory>",
		Short: "Render the plain validation report for a catalog",
		Long: `Parse and validate a catalog, then print the plain-text report:
"OK" when the document is compliant, otherwise one line per violation.

With --output the report is written to a file using a lock and an
atomic rename, so concurrent runs never leave a partial file.`,
		Args:         cobra.ExactArgs(1),
		RunE:         runReport,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")

	return cmd
}

// runReport executes the report command
func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	doc, err := parser.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	v := validator.NewWithDisabledRules(cfg.DisabledRules)
	text := report.Report(v.Validate(doc))

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	if err := filelock.LockAndWrite(outputPath, []byte(text+"\n")); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputPath)
	return nil
}
