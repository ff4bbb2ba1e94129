package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := NewRootCommand()

	expected := []string{"validate", "report", "history", "stats"}
	for _, name := range expected {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, "subcommand %s not found", name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestRootCommandHelp(t *testing.T) {
	out, err := executeCommand(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "doclint")
	assert.Contains(t, out, "validate")
}

func TestUnknownSubcommand(t *testing.T) {
	_, err := executeCommand(t, "frobnicate")
	assert.Error(t, err)
}
