package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harrison/doclint/internal/models"
)

// Format represents the format of a catalog file
type Format int

const (
	// FormatUnknown represents an unknown or unsupported file format
	FormatUnknown Format = iota
	// FormatMarkdown represents a Markdown (.md, .markdown) catalog file
	FormatMarkdown
	// FormatYAML represents a YAML (.yaml, .yml) catalog file
	FormatYAML
)

// String returns the string representation of the Format
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// MalformedError indicates the input text does not have the expected
// heading/definition structure. It is returned from parsing, never from
// validation: a document that parses but breaks structural rules yields
// violations instead.
type MalformedError struct {
	Path   string // Source path when known, empty for reader input
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed catalog %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("malformed catalog: %s", e.Reason)
}

// Parser is the interface that all catalog parsers must implement
type Parser interface {
	// Parse reads from an io.Reader and returns a parsed Document
	Parse(r io.Reader) (*models.Document, error)
}

// DetectFormat automatically detects the catalog format based on file extension
// Supported extensions:
//   - .md, .markdown -> FormatMarkdown
//   - .yaml, .yml -> FormatYAML
//   - all others -> FormatUnknown
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// NewParser creates a new parser instance for the specified format
// Returns an error if the format is unknown or unsupported
func NewParser(format Format) (Parser, error) {
	switch format {
	case FormatMarkdown:
		return NewMarkdownParser(), nil
	case FormatYAML:
		return NewYAMLParser(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
}

// ParseFile is a convenience function that:
//  1. Detects if the path is a directory (multi-file catalog) or file
//  2. For directories, calls ParseDirectory to load and merge catalogs
//  3. For files, auto-detects format, opens it, and parses
//  4. Stores the absolute source path in doc.FilePath
//
// This is the recommended way to parse catalogs from disk.
func ParseFile(path string) (*models.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if info.IsDir() {
		return ParseDirectory(path)
	}

	doc, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	doc.FilePath = absPath

	return doc, nil
}

// parseFile is the internal implementation that parses a single file
func parseFile(path string) (*models.Document, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unknown file format: %s (supported: .md, .markdown, .yaml, .yml)", path)
	}

	p, err := NewParser(format)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	doc, err := p.Parse(file)
	if err != nil {
		// Attach the source path to malformed-input errors
		if merr, ok := err.(*MalformedError); ok && merr.Path == "" {
			merr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// ParseDirectory loads all catalog files from a directory and merges
// them into a single document. Files are processed in lexical order so
// the merged principle sequence is deterministic.
func ParseDirectory(dirname string) (*models.Document, error) {
	info, err := os.Stat(dirname)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirname)
	}

	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var catalogFiles []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if DetectFormat(entry.Name()) == FormatUnknown {
			continue
		}
		catalogFiles = append(catalogFiles, filepath.Join(dirname, entry.Name()))
	}

	if len(catalogFiles) == 0 {
		return nil, &MalformedError{Path: dirname, Reason: "no catalog files found"}
	}

	sort.Strings(catalogFiles)

	var docs []*models.Document
	for _, path := range catalogFiles {
		doc, err := parseFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		absPath, aerr := filepath.Abs(path)
		if aerr != nil {
			absPath = path
		}
		doc.FilePath = absPath
		docs = append(docs, doc)
	}

	merged := MergeDocuments(docs...)

	absPath, err := filepath.Abs(dirname)
	if err != nil {
		absPath = dirname
	}
	merged.FilePath = absPath
	return merged, nil
}

// MergeDocuments combines multiple documents into a single document.
// Principles keep their source order; duplicate abbreviations across
// files deliberately survive the merge so the validator can report
// them rather than the parser rejecting the input.
func MergeDocuments(docs ...*models.Document) *models.Document {
	merged := &models.Document{}

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if merged.Title == "" {
			merged.Title = doc.Title
		}
		for _, p := range doc.Principles {
			// Track which catalog file each principle comes from
			p.SourceFile = doc.FilePath
			merged.Principles = append(merged.Principles, p)
		}
		merged.References = append(merged.References, doc.References...)
	}

	return merged
}
