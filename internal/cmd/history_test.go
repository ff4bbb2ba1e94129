package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryEmpty(t *testing.T) {
	t.Setenv("DOCLINT_HOME", t.TempDir())

	out, err := executeCommand(t, "history")

	require.NoError(t, err)
	assert.Contains(t, out, "No run history found")
}

func TestHistoryListsRuns(t *testing.T) {
	t.Setenv("DOCLINT_HOME", t.TempDir())

	good := writeCatalog(t, "solid.md", validCatalog)
	bad := writeCatalog(t, "mixed.md", duplicateAbbrevCatalog)

	_, err := executeCommand(t, "validate", good)
	require.NoError(t, err)
	_, err = executeCommand(t, "validate", bad)
	require.Error(t, err)

	out, err := executeCommand(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Recent validation runs (2)")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL (1 violation(s))")
}

func TestHistoryClearForce(t *testing.T) {
	t.Setenv("DOCLINT_HOME", t.TempDir())

	path := writeCatalog(t, "solid.md", validCatalog)
	_, err := executeCommand(t, "validate", path)
	require.NoError(t, err)

	out, err := executeCommand(t, "history", "clear", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 run(s)")

	out, err = executeCommand(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No run history found")
}

func TestStatsEmpty(t *testing.T) {
	t.Setenv("DOCLINT_HOME", t.TempDir())

	out, err := executeCommand(t, "stats")

	require.NoError(t, err)
	assert.Contains(t, out, "No run history found")
}

func TestStatsAggregatesRules(t *testing.T) {
	t.Setenv("DOCLINT_HOME", t.TempDir())

	good := writeCatalog(t, "solid.md", validCatalog)
	bad := writeCatalog(t, "mixed.md", duplicateAbbrevCatalog)

	_, err := executeCommand(t, "validate", good)
	require.NoError(t, err)
	_, err = executeCommand(t, "validate", bad)
	require.Error(t, err)

	out, err := executeCommand(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total runs:  2")
	assert.Contains(t, out, "duplicate abbreviation")
}
