package models

import (
	"errors"
	"fmt"
)

// Principle represents a single named design rule in a catalog,
// e.g. "Single Responsibility Principle (S)".
type Principle struct {
	Number       int           // Position declared in the source heading (1-based)
	Name         string        // Principle name/title
	Abbreviation string        // Single letter, unique per document
	Definition   string        // Definition text (blockquote in markdown sources)
	Examples     []CodeExample // Code samples illustrating the principle
	SourceFile   string        // Catalog file this principle originates from (multi-file documents)
}

// CodeExample is one fenced code sample attached to a principle.
type CodeExample struct {
	Language string // Fence info string ("java", "go", ...); empty when untagged
	Code     string // Raw code content without the fence markers
}

// Reference is one entry in a document's reference list.
type Reference struct {
	Label string
	URL   string
}

// Document is an immutable, fully parsed principle catalog.
type Document struct {
	Title      string
	Principles []Principle
	References []Reference
	FilePath   string // Absolute source path, set by ParseFile
}

// Validate checks that the principle carries the fields the parser is
// required to produce. Structural rules (empty definitions, duplicate
// abbreviations) belong to the validator, not here.
func (p *Principle) Validate() error {
	if p.Name == "" {
		return errors.New("principle name is required")
	}
	if len(p.Abbreviation) != 1 {
		return fmt.Errorf("principle abbreviation must be a single letter, got %q", p.Abbreviation)
	}
	return nil
}

// Validate checks the document-level invariant: a catalog holds at
// least one principle.
func (d *Document) Validate() error {
	if len(d.Principles) == 0 {
		return errors.New("document contains no principles")
	}
	for i := range d.Principles {
		if err := d.Principles[i].Validate(); err != nil {
			return fmt.Errorf("principle %d: %w", i+1, err)
		}
	}
	return nil
}
