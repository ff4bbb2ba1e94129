package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCompliantCatalog(t *testing.T) {
	path := writeCatalog(t, "solid.md", validCatalog)

	out, err := executeCommand(t, "report", path)

	require.NoError(t, err)
	assert.Equal(t, "OK", strings.TrimSpace(out))
}

func TestReportViolations(t *testing.T) {
	path := writeCatalog(t, "mixed.md", duplicateAbbrevCatalog)

	out, err := executeCommand(t, "report", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Stable Dependencies Principle: duplicate abbreviation")
	assert.NotContains(t, out, "OK")
}

func TestReportToFile(t *testing.T) {
	path := writeCatalog(t, "solid.md", validCatalog)
	outputPath := filepath.Join(t.TempDir(), "report.txt")

	out, err := executeCommand(t, "report", path, "--output", outputPath)

	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "OK\n", string(data))
}

func TestReportIdempotentOutput(t *testing.T) {
	path := writeCatalog(t, "mixed.md", duplicateAbbrevCatalog)

	first, err := executeCommand(t, "report", path)
	require.NoError(t, err)
	second, err := executeCommand(t, "report", path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReportParseFailure(t *testing.T) {
	path := writeCatalog(t, "empty.md", "")

	_, err := executeCommand(t, "report", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error")
}
