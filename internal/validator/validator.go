// Package validator enforces structural rules on parsed principle
// catalogs. Validation is pure and total: a Document goes in, a
// possibly empty slice of violations comes out, and nothing is ever
// thrown or retried.
package validator

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/harrison/doclint/internal/models"
)

// Validator checks documents against a configurable rule set.
type Validator struct {
	disabled map[string]bool
}

// New creates a Validator with all rules enabled
func New() *Validator {
	return &Validator{disabled: map[string]bool{}}
}

// NewWithDisabledRules creates a Validator that skips the named rules.
// Unknown rule names are ignored.
func NewWithDisabledRules(rules []string) *Validator {
	disabled := make(map[string]bool, len(rules))
	for _, rule := range rules {
		disabled[strings.TrimSpace(rule)] = true
	}
	return &Validator{disabled: disabled}
}

// Validate checks all structural rules against the document and
// returns violations in deterministic order: document order first,
// rule order within each principle, reference rules last.
// An empty result means the document is compliant.
func (v *Validator) Validate(doc *models.Document) []models.Violation {
	var violations []models.Violation

	seenAbbrevs := make(map[string]string) // abbreviation -> first holder
	prevNumber := 0

	for _, p := range doc.Principles {
		if !v.disabled[models.RuleEmptyDefinition] && strings.TrimSpace(p.Definition) == "" {
			violations = append(violations, models.Violation{
				PrincipleName: p.Name,
				Rule:          models.RuleEmptyDefinition,
			})
		}

		if !v.disabled[models.RuleMissingExamples] && len(p.Examples) == 0 {
			violations = append(violations, models.Violation{
				PrincipleName: p.Name,
				Rule:          models.RuleMissingExamples,
			})
		}

		// Duplicates are charged to the later occurrence so a single
		// duplicated pair yields exactly one violation
		if !v.disabled[models.RuleDuplicateAbbrev] {
			if first, exists := seenAbbrevs[p.Abbreviation]; exists {
				violations = append(violations, models.Violation{
					PrincipleName: p.Name,
					Rule:          models.RuleDuplicateAbbrev,
					Detail:        fmt.Sprintf("%q already used by %s", p.Abbreviation, first),
				})
			} else {
				seenAbbrevs[p.Abbreviation] = p.Name
			}
		}

		if !v.disabled[models.RuleUnlabeledCodeBlock] {
			for i, ex := range p.Examples {
				if strings.TrimSpace(ex.Language) == "" {
					violations = append(violations, models.Violation{
						PrincipleName: p.Name,
						Rule:          models.RuleUnlabeledCodeBlock,
						Detail:        fmt.Sprintf("example %d has no language tag", i+1),
					})
				}
			}
		}

		if !v.disabled[models.RuleNonSequentialNumber] && p.Number <= prevNumber {
			violations = append(violations, models.Violation{
				PrincipleName: p.Name,
				Rule:          models.RuleNonSequentialNumber,
				Detail:        fmt.Sprintf("number %d follows %d", p.Number, prevNumber),
			})
		}
		prevNumber = p.Number
	}

	if !v.disabled[models.RuleInvalidReferenceURL] {
		for _, ref := range doc.References {
			if !validReferenceURL(ref.URL) {
				violations = append(violations, models.Violation{
					Rule:   models.RuleInvalidReferenceURL,
					Detail: fmt.Sprintf("%s -> %q", ref.Label, ref.URL),
				})
			}
		}
	}

	return violations
}

// validReferenceURL reports whether a reference URL parses and uses an
// http or https scheme.
func validReferenceURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
