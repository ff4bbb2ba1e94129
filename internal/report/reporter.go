// Package report renders validation results. The Report function is
// pure and deterministic so the same violations always produce the
// same text; Summary adds the ✓/✗ terminal presentation on top.
package report

import (
	"strings"

	"github.com/harrison/doclint/internal/models"
)

// Report renders violations to a human-readable summary.
// Returns "OK" when the slice is empty, otherwise one line per
// violation in input order. Calling it twice on the same input yields
// identical output.
func Report(violations []models.Violation) string {
	if len(violations) == 0 {
		return "OK"
	}

	var b strings.Builder
	for i, v := range violations {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(v.String())
	}
	return b.String()
}
