package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAMLCatalog(t *testing.T) {
	yamlDoc := `
title: SOLID Design Principles
principles:
  - number: 1
    name: Single Responsibility Principle
    abbreviation: S
    definition: A class should have one reason to change.
    examples:
      - language: java
        code: |
          class Invoice { }
  - number: 2
    name: Open/Closed Principle
    abbreviation: O
    definition: Open for extension, closed for modification.
    examples:
      - language: java
        code: |
          interface Shape { double area(); }
references:
  - label: Clean Architecture
    url: https://example.com/clean-architecture
`

	p := NewYAMLParser()
	doc, err := p.Parse(strings.NewReader(yamlDoc))
	require.NoError(t, err)

	assert.Equal(t, "SOLID Design Principles", doc.Title)
	require.Len(t, doc.Principles, 2)
	assert.Equal(t, "Single Responsibility Principle", doc.Principles[0].Name)
	assert.Equal(t, "S", doc.Principles[0].Abbreviation)
	assert.Equal(t, "A class should have one reason to change.", doc.Principles[0].Definition)
	require.Len(t, doc.Principles[0].Examples, 1)
	assert.Equal(t, "java", doc.Principles[0].Examples[0].Language)
	assert.Contains(t, doc.Principles[0].Examples[0].Code, "class Invoice")
	require.Len(t, doc.References, 1)
	assert.Equal(t, "Clean Architecture", doc.References[0].Label)
}

func TestParseYAMLMissingDefinition(t *testing.T) {
	yamlDoc := `
principles:
  - number: 1
    name: Single Responsibility Principle
    abbreviation: S
    examples:
      - language: java
        code: class A { }
`

	p := NewYAMLParser()
	_, err := p.Parse(strings.NewReader(yamlDoc))
	require.Error(t, err)

	var merr *MalformedError
	assert.True(t, errors.As(err, &merr), "expected MalformedError, got %T", err)
}

func TestParseYAMLEmptyDefinitionIsNotMalformed(t *testing.T) {
	yamlDoc := `
principles:
  - number: 1
    name: Single Responsibility Principle
    abbreviation: S
    definition: ""
`

	p := NewYAMLParser()
	doc, err := p.Parse(strings.NewReader(yamlDoc))
	require.NoError(t, err)
	assert.Empty(t, doc.Principles[0].Definition)
}

func TestParseYAMLNoPrinciples(t *testing.T) {
	p := NewYAMLParser()
	_, err := p.Parse(strings.NewReader("title: Empty Catalog\n"))
	require.Error(t, err)

	var merr *MalformedError
	assert.True(t, errors.As(err, &merr), "expected MalformedError, got %T", err)
}
