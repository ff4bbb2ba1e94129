package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/harrison/doclint/internal/config"
	"github.com/harrison/doclint/internal/fileutil"
	"github.com/harrison/doclint/internal/history"
	"github.com/harrison/doclint/internal/logger"
	"github.com/harrison/doclint/internal/models"
	"github.com/harrison/doclint/internal/parser"
	"github.com/harrison/doclint/internal/report"
	"github.com/harrison/doclint/internal/validator"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file-or-directory>...",
		Short: "Validate one or more catalog files or directories",
		Long: `Parse and validate principle catalogs, checking for:
  - Non-empty definitions
  - At least one code example per principle
  - Unique abbreviations across the document
  - Well-formed reference URLs
  - Language tags on code blocks
  - Sequential principle numbering

Supports multiple input modes:
  - Single file: doclint validate solid.md
  - Single directory: doclint validate docs/ (scans *.md and *.yaml)
  - Multiple files: doclint validate solid.md grasp.yaml

Exit code: 0 if compliant, 1 if violations found`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noHistory, _ := cmd.Flags().GetBool("no-history")
			return runValidate(cmd, args, cmd.OutOrStdout(), noHistory)
		},
		SilenceUsage: true,
	}

	cmd.Flags().Bool("no-history", false, "Skip recording this run in the history database")

	return cmd
}

// runValidate parses all catalogs named by paths, validates the merged
// document, renders the summary, and records the run.
func runValidate(cmd *cobra.Command, paths []string, output io.Writer, noHistory bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	catalogFiles, err := resolveCatalogFiles(paths)
	if err != nil {
		return err
	}
	log.LogDebug(fmt.Sprintf("resolved %d catalog file(s)", len(catalogFiles)))

	var docs []*models.Document
	for _, path := range catalogFiles {
		log.LogTrace(fmt.Sprintf("parsing %s", path))
		doc, err := parser.ParseFile(path)
		if err != nil {
			fmt.Fprintf(output, "✗ Failed to parse %s\n", filepath.Base(path))
			fmt.Fprintf(output, "  Error: %v\n", err)
			return fmt.Errorf("parse error: %w", err)
		}
		docs = append(docs, doc)
	}

	merged := parser.MergeDocuments(docs...)
	if len(catalogFiles) == 1 {
		merged.FilePath = docs[0].FilePath
	} else {
		merged.FilePath = fmt.Sprintf("%d files", len(catalogFiles))
	}

	if err := merged.Validate(); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	v := validator.NewWithDisabledRules(cfg.DisabledRules)
	violations := v.Validate(merged)

	summary := report.NewSummary(output)
	summary.Render(merged, violations)

	if cfg.History.Enabled && !noHistory {
		if err := recordRun(cfg, paths[0], len(docs), len(merged.Principles), violations); err != nil {
			// History is best-effort; a broken database must not mask
			// the validation result
			log.LogWarn(fmt.Sprintf("failed to record run: %v", err))
		}
	}

	if len(violations) > 0 {
		return fmt.Errorf("validation failed with %d violation(s)", len(violations))
	}
	return nil
}

// resolveCatalogFiles expands files and directories into a deduplicated,
// sorted list of catalog file paths.
func resolveCatalogFiles(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %q: %w", path, err)
		}

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %q: %w", absPath, err)
		}

		if info.IsDir() {
			result, err := fileutil.ScanDirectory(absPath, fileutil.CatalogScanOptions())
			if err != nil {
				return nil, fmt.Errorf("failed to scan directory %q: %w", absPath, err)
			}
			for _, file := range result.Files {
				if !seen[file] {
					files = append(files, file)
					seen[file] = true
				}
			}
			continue
		}

		if parser.DetectFormat(absPath) == parser.FormatUnknown {
			return nil, fmt.Errorf("unsupported file format: %s (supported: .md, .markdown, .yaml, .yml)", absPath)
		}
		if !seen[absPath] {
			files = append(files, absPath)
			seen[absPath] = true
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}

	sort.Strings(files)
	return files, nil
}

// recordRun opens the history store and records one validation run,
// pruning entries past the configured retention.
func recordRun(cfg *config.Config, targetPath string, documentCount, principleCount int, violations []models.Violation) error {
	dbPath := cfg.History.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = config.GetHistoryDBPath()
		if err != nil {
			return err
		}
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if _, err := store.RecordRun(targetPath, documentCount, principleCount, violations); err != nil {
		return err
	}

	_, err = store.Prune(cfg.History.KeepRunsDays)
	return err
}
