package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/doclint/internal/models"
)

// Summary renders validation results for terminal output, with ✓/✗
// markers and color when the writer is a TTY.
type Summary struct {
	writer   io.Writer
	useColor bool
}

// NewSummary creates a Summary writing to the given writer. Color is
// enabled only when the writer is a terminal (and NO_COLOR is unset).
func NewSummary(w io.Writer) *Summary {
	return &Summary{
		writer:   w,
		useColor: isTerminalWriter(w),
	}
}

// isTerminalWriter reports whether the writer is a TTY that supports
// color output.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes the full validation summary for a document: parse
// stats, one line per violation, and a final verdict.
func (s *Summary) Render(doc *models.Document, violations []models.Violation) {
	s.ok("Parsed %d principle(s) from %s", len(doc.Principles), doc.FilePath)
	if len(doc.References) > 0 {
		s.ok("Found %d reference(s)", len(doc.References))
	}

	if len(violations) == 0 {
		fmt.Fprintln(s.writer)
		s.ok("Document is valid!")
		return
	}

	fmt.Fprintln(s.writer)
	s.fail("Validation failed")
	for _, v := range violations {
		s.failIndented(v.String())
	}
	fmt.Fprintf(s.writer, "\nFound %d violation(s)!\n", len(violations))
}

func (s *Summary) ok(format string, args ...interface{}) {
	s.mark("✓", color.FgGreen, format, args...)
}

func (s *Summary) fail(format string, args ...interface{}) {
	s.mark("✗", color.FgRed, format, args...)
}

func (s *Summary) failIndented(format string, args ...interface{}) {
	fmt.Fprint(s.writer, "  ")
	s.mark("✗", color.FgRed, format, args...)
}

func (s *Summary) mark(symbol string, c color.Attribute, format string, args ...interface{}) {
	if s.useColor {
		symbol = color.New(c).Sprint(symbol)
	}
	fmt.Fprintf(s.writer, "%s %s\n", symbol, fmt.Sprintf(format, args...))
}
