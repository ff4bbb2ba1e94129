package report

import (
	"strings"
	"testing"

	"github.com/harrison/doclint/internal/models"
)

func TestReportEmpty(t *testing.T) {
	if got := Report(nil); got != "OK" {
		t.Errorf("Expected 'OK' for no violations, got %q", got)
	}
	if got := Report([]models.Violation{}); got != "OK" {
		t.Errorf("Expected 'OK' for empty slice, got %q", got)
	}
}

func TestReportOneLinePerViolation(t *testing.T) {
	violations := []models.Violation{
		{PrincipleName: "Single Responsibility Principle", Rule: models.RuleEmptyDefinition},
		{PrincipleName: "Open/Closed Principle", Rule: models.RuleMissingExamples},
		{PrincipleName: "Stable Dependencies Principle", Rule: models.RuleDuplicateAbbrev, Detail: `"S" already used by Single Responsibility Principle`},
	}

	got := Report(violations)
	lines := strings.Split(got, "\n")

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "Single Responsibility Principle: empty definition" {
		t.Errorf("Unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[2], "duplicate abbreviation") {
		t.Errorf("Expected duplicate abbreviation rule in %q", lines[2])
	}
}

func TestReportIdempotent(t *testing.T) {
	violations := []models.Violation{
		{PrincipleName: "Liskov Substitution Principle", Rule: models.RuleMissingExamples},
	}

	first := Report(violations)
	second := Report(violations)

	if first != second {
		t.Errorf("Report is not idempotent: %q vs %q", first, second)
	}
}

func TestReportDocumentLevelViolation(t *testing.T) {
	violations := []models.Violation{
		{Rule: models.RuleInvalidReferenceURL, Detail: `Ref -> "example.com"`},
	}

	got := Report(violations)
	if !strings.HasPrefix(got, "document: ") {
		t.Errorf("Expected document-level prefix, got %q", got)
	}
}
