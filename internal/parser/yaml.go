package parser

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/doclint/internal/models"
)

// YAMLParser parses principle catalogs expressed as YAML documents.
//
// Expected shape:
//
//	title: SOLID Design Principles
//	principles:
//	  - number: 1
//	    name: Single Responsibility Principle
//	    abbreviation: S
//	    definition: A class should have one reason to change.
//	    examples:
//	      - language: java
//	        code: |
//	          class Invoice { }
//	references:
//	  - label: Clean Architecture
//	    url: https://example.com/clean-architecture
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// yamlCatalog is the wire representation of a YAML catalog file.
// Definition is a pointer so a missing key (malformed input) can be
// told apart from an empty string (validator territory).
type yamlCatalog struct {
	Title      string          `yaml:"title"`
	Principles []yamlPrinciple `yaml:"principles"`
	References []yamlReference `yaml:"references"`
}

type yamlPrinciple struct {
	Number       int           `yaml:"number"`
	Name         string        `yaml:"name"`
	Abbreviation string        `yaml:"abbreviation"`
	Definition   *string       `yaml:"definition"`
	Examples     []yamlExample `yaml:"examples"`
}

type yamlExample struct {
	Language string `yaml:"language"`
	Code     string `yaml:"code"`
}

type yamlReference struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

func (p *YAMLParser) Parse(r io.Reader) (*models.Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	var catalog yamlCatalog
	if err := yaml.Unmarshal(content, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse YAML catalog: %w", err)
	}

	if len(catalog.Principles) == 0 {
		return nil, &MalformedError{Reason: "no principles found"}
	}

	doc := &models.Document{Title: catalog.Title}

	for _, yp := range catalog.Principles {
		if yp.Definition == nil {
			return nil, &MalformedError{
				Reason: fmt.Sprintf("principle %q has no definition", yp.Name),
			}
		}

		principle := models.Principle{
			Number:       yp.Number,
			Name:         strings.TrimSpace(yp.Name),
			Abbreviation: yp.Abbreviation,
			Definition:   strings.TrimSpace(*yp.Definition),
		}
		for _, ex := range yp.Examples {
			principle.Examples = append(principle.Examples, models.CodeExample{
				Language: ex.Language,
				Code:     ex.Code,
			})
		}
		doc.Principles = append(doc.Principles, principle)
	}

	for _, yr := range catalog.References {
		doc.References = append(doc.References, models.Reference{
			Label: yr.Label,
			URL:   yr.URL,
		})
	}

	return doc, nil
}
