package models

import "fmt"

// Rule names are stable strings: they appear in reports, in the history
// database, and in config disabled-rule lists.
const (
	RuleEmptyDefinition     = "empty definition"
	RuleMissingExamples     = "missing examples"
	RuleDuplicateAbbrev     = "duplicate abbreviation"
	RuleInvalidReferenceURL = "invalid reference url"
	RuleUnlabeledCodeBlock  = "unlabeled code block"
	RuleNonSequentialNumber = "non-sequential numbering"
)

// Violation is one detected structural inconsistency. Violations are
// data returned by the validator, never errors.
type Violation struct {
	PrincipleName string // Principle the violation is attached to ("" for document-level rules)
	Rule          string // One of the Rule* constants
	Detail        string // Human-readable specifics (optional)
}

// String renders a single report line for the violation.
func (v Violation) String() string {
	name := v.PrincipleName
	if name == "" {
		name = "document"
	}
	if v.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", name, v.Rule, v.Detail)
	}
	return fmt.Sprintf("%s: %s", name, v.Rule)
}
