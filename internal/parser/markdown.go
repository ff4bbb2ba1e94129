package parser

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/harrison/doclint/internal/models"
)

// MarkdownParser parses markdown principle catalogs.
//
// Expected shape:
//
//	## 1. Single Responsibility Principle (S)
//
//	> A class should have one, and only one, reason to change.
//
//	```java
//	class Invoice { ... }
//	```
//
// A level-2 "References" heading introduces the reference list.
type MarkdownParser struct {
	markdown goldmark.Markdown
}

// principleHeadingRegex matches "N. Name (X)" principle headings where
// X is the single-letter abbreviation.
var principleHeadingRegex = regexp.MustCompile(`^(\d+)\.\s+(.+?)\s+\(([A-Za-z])\)$`)

func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{
		markdown: goldmark.New(),
	}
}

// frontmatterMeta represents the optional YAML frontmatter of a catalog
type frontmatterMeta struct {
	Title string `yaml:"title"`
}

// principleBuilder accumulates a principle during the AST walk. The
// sawDefinition flag distinguishes "no blockquote at all" (malformed
// input) from "blockquote present but blank" (validator territory).
type principleBuilder struct {
	principle     models.Principle
	sawDefinition bool
}

func (p *MarkdownParser) Parse(r io.Reader) (*models.Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	doc := &models.Document{}
	content, frontmatter := extractFrontmatter(content)
	if frontmatter != nil {
		var meta frontmatterMeta
		if err := yaml.Unmarshal(frontmatter, &meta); err != nil {
			return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
		}
		doc.Title = meta.Title
	}

	root := p.markdown.Parser().Parse(text.NewReader(content))

	builders, refs, title, err := p.extractSections(root, content)
	if err != nil {
		return nil, err
	}

	if doc.Title == "" {
		doc.Title = title
	}
	doc.References = refs

	if len(builders) == 0 {
		return nil, &MalformedError{Reason: "no principle headings found"}
	}

	for _, b := range builders {
		if !b.sawDefinition {
			return nil, &MalformedError{
				Reason: fmt.Sprintf("principle %q has no definition blockquote", b.principle.Name),
			}
		}
		doc.Principles = append(doc.Principles, b.principle)
	}

	return doc, nil
}

// extractSections walks the markdown AST and collects principles and
// references in document order. Blockquotes and fenced code blocks are
// attached to the most recent principle heading; list items under a
// "References" heading become reference entries.
func (p *MarkdownParser) extractSections(root ast.Node, source []byte) ([]*principleBuilder, []models.Reference, string, error) {
	var builders []*principleBuilder
	var refs []models.Reference
	var title string

	var current *principleBuilder
	inReferences := false

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			headingText := extractText(node, source)

			if node.Level == 1 {
				if title == "" {
					title = headingText
				}
				return ast.WalkSkipChildren, nil
			}

			if node.Level == 2 {
				if matches := principleHeadingRegex.FindStringSubmatch(headingText); matches != nil {
					number, _ := strconv.Atoi(matches[1])
					current = &principleBuilder{
						principle: models.Principle{
							Number:       number,
							Name:         strings.TrimSpace(matches[2]),
							Abbreviation: matches[3],
						},
					}
					builders = append(builders, current)
					inReferences = false
				} else if strings.EqualFold(strings.TrimSpace(headingText), "references") {
					current = nil
					inReferences = true
				} else {
					// Some other section, stop attaching content
					current = nil
					inReferences = false
				}
			}
			return ast.WalkSkipChildren, nil

		case *ast.Blockquote:
			// First blockquote in a section is the definition
			if current != nil && !current.sawDefinition {
				current.principle.Definition = strings.TrimSpace(nodeText(node, source))
				current.sawDefinition = true
			}
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			if current != nil {
				current.principle.Examples = append(current.principle.Examples, models.CodeExample{
					Language: string(node.Language(source)),
					Code:     codeBlockContent(node, source),
				})
			}
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			if inReferences {
				if ref, ok := extractReference(node, source); ok {
					refs = append(refs, ref)
				}
				return ast.WalkSkipChildren, nil
			}
			return ast.WalkContinue, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, nil, "", err
	}

	return builders, refs, title, nil
}

// extractText extracts plain text from an AST node's direct children
func extractText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
	}
	return buf.String()
}

// nodeText extracts plain text from a node and all its descendants,
// joining block-level children with newlines.
func nodeText(n ast.Node, source []byte) string {
	var parts []string
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			parts = append(parts, string(t.Segment.Value(source)))
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(parts, " ")
}

// codeBlockContent returns the raw content of a fenced code block
// without the fence markers.
func codeBlockContent(node *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(source))
	}
	return buf.String()
}

// extractReference pulls a {label, url} pair out of a reference list
// item. Markdown links and autolinks are supported; bare text items
// are ignored.
func extractReference(item ast.Node, source []byte) (models.Reference, bool) {
	var ref models.Reference
	found := false

	_ = ast.Walk(item, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || found {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			ref.Label = strings.TrimSpace(nodeText(node, source))
			ref.URL = string(node.Destination)
			found = true
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			url := string(node.URL(source))
			ref.Label = url
			ref.URL = url
			found = true
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return ref, found
}

// extractFrontmatter extracts YAML frontmatter from markdown content
// Returns the content without frontmatter and the frontmatter bytes
func extractFrontmatter(content []byte) ([]byte, []byte) {
	lines := bytes.Split(content, []byte("\n"))

	// Check if starts with ---
	if len(lines) < 3 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return content, nil
	}

	// Find closing ---
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			frontmatter := bytes.Join(lines[1:i], []byte("\n"))
			body := bytes.Join(lines[i+1:], []byte("\n"))
			return body, frontmatter
		}
	}

	// No closing delimiter found
	return content, nil
}
