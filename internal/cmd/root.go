package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/doclint/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for doclint
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doclint",
		Short: "Structural validator for principle-catalog documents",
		Long: `Doclint parses principle-catalog documents (Markdown or YAML),
checks structural rules (definitions present, examples present, unique
abbreviations, well-formed references), and reports the results.

Exit code: 0 when the document is compliant, 1 otherwise.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Register the default --help flag eagerly; cobra otherwise adds it
	// after command lookup, which mis-parses "--help" followed by flags
	// that take values.
	cmd.InitDefaultHelpFlag()

	cmd.PersistentFlags().String("config", config.DefaultConfigFile, "Path to the doclint config file")
	cmd.PersistentFlags().String("log-level", "", "Log verbosity: trace, debug, info, warn, error")

	// Add subcommands
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewHistoryCommand())
	cmd.AddCommand(NewStatsCommand())

	return cmd
}

// loadConfig reads the config file named by the persistent --config
// flag and applies the --log-level override when set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}
