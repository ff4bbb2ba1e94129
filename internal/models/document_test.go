package models

import (
	"testing"
)

func TestPrincipleValidate(t *testing.T) {
	tests := []struct {
		name      string
		principle Principle
		wantErr   bool
	}{
		{
			name:      "valid principle",
			principle: Principle{Number: 1, Name: "Single Responsibility Principle", Abbreviation: "S"},
			wantErr:   false,
		},
		{
			name:      "missing name",
			principle: Principle{Number: 1, Abbreviation: "S"},
			wantErr:   true,
		},
		{
			name:      "empty abbreviation",
			principle: Principle{Number: 1, Name: "Single Responsibility Principle"},
			wantErr:   true,
		},
		{
			name:      "multi-letter abbreviation",
			principle: Principle{Number: 1, Name: "Single Responsibility Principle", Abbreviation: "SRP"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.principle.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDocumentValidate(t *testing.T) {
	valid := Document{
		Principles: []Principle{
			{Number: 1, Name: "Single Responsibility Principle", Abbreviation: "S"},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid document, got %v", err)
	}

	empty := Document{}
	if err := empty.Validate(); err == nil {
		t.Error("Expected error for document without principles")
	}

	badPrinciple := Document{
		Principles: []Principle{{Number: 1, Abbreviation: "S"}},
	}
	if err := badPrinciple.Validate(); err == nil {
		t.Error("Expected error for principle without name")
	}
}

func TestViolationString(t *testing.T) {
	tests := []struct {
		name      string
		violation Violation
		expected  string
	}{
		{
			name:      "principle violation",
			violation: Violation{PrincipleName: "Open/Closed Principle", Rule: RuleMissingExamples},
			expected:  "Open/Closed Principle: missing examples",
		},
		{
			name:      "violation with detail",
			violation: Violation{PrincipleName: "Stable Dependencies Principle", Rule: RuleDuplicateAbbrev, Detail: `"S" already used by Single Responsibility Principle`},
			expected:  `Stable Dependencies Principle: duplicate abbreviation ("S" already used by Single Responsibility Principle)`,
		},
		{
			name:      "document-level violation",
			violation: Violation{Rule: RuleInvalidReferenceURL, Detail: `Ref -> "example.com"`},
			expected:  `document: invalid reference url (Ref -> "example.com")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.violation.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
