package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	output, err := executeCommand(t, "", "--help")
	assert.NoError(t, err)

	assert.Contains(t, output, "TodoWing manages a to-do list")
	assert.Contains(t, output, "Usage:")
	assert.Contains(t, output, "Available Commands:")
	for _, name := range []string{"add", "list", "done", "edit", "delete", "export", "backup", "ui"} {
		assert.Contains(t, output, name)
	}
}

func TestRootCmd_NoArgsWithoutTerminal(t *testing.T) {
	// go test does not run on a TTY, so the root command falls back to help
	output, err := executeCommand(t, "")
	assert.NoError(t, err)
	assert.Contains(t, output, "Usage:")
}

func TestUICmd_RequiresTerminal(t *testing.T) {
	_, err := executeCommand(t, "", "ui", "--file", newTaskFile(t, ""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNotTerminal))
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "1.0.0", GetVersion())

	output, err := executeCommand(t, "", "--version")
	assert.NoError(t, err)
	assert.Contains(t, output, "1.0.0")
}

func TestGetStore_UsesFileFlag(t *testing.T) {
	path := newTaskFile(t, "")
	_, err := executeCommand(t, "", "list", "--file", path)
	require.NoError(t, err)

	s, err := GetStore()
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
}
