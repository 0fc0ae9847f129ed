package cmd

import (
	"encoding/json"
	"testing"

	"github.com/josephgoksu/TodoWing/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Empty(t *testing.T) {
	output, err := executeCommand(t, "", "list", "--file", newTaskFile(t, ""))
	require.NoError(t, err)

	assert.Contains(t, output, "No tasks yet.")
}

func TestListCmd_Numbered(t *testing.T) {
	path := newTaskFile(t, "[ ] Buy milk\n[x] Walk dog\n")

	output, err := executeCommand(t, "", "list", "--file", path)
	require.NoError(t, err)

	assert.Equal(t, "1. [ ] Buy milk\n2. [x] Walk dog\n", output)
}

func TestListCmd_KeepsStoredLines(t *testing.T) {
	path := newTaskFile(t, "[ ]\nloose line\n[x]  spaced\n")

	output, err := executeCommand(t, "", "list", "--file", path)
	require.NoError(t, err)

	assert.Equal(t, "1. [ ]\n2. loose line\n3. [x]  spaced\n", output)
}

func TestListCmd_JSON(t *testing.T) {
	path := newTaskFile(t, "[ ] Buy milk\n[x] Walk dog\n")

	output, err := executeCommand(t, "", "list", "--json", "--file", path)
	require.NoError(t, err)

	var list models.TaskList
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.Equal(t, 2, list.TotalCount)
	require.Len(t, list.Tasks, 2)
	assert.False(t, list.Tasks[0].Completed)
	assert.True(t, list.Tasks[1].Completed)
	assert.Equal(t, "Walk dog", list.Tasks[1].Description)
}

func TestListCmd_Table(t *testing.T) {
	path := newTaskFile(t, "[ ] Buy milk\n[x] Walk dog\n")

	output, err := executeCommand(t, "", "ls", "--table", "--file", path)
	require.NoError(t, err)

	assert.Contains(t, output, "Description")
	assert.Contains(t, output, "pending")
	assert.Contains(t, output, "done")
	assert.Contains(t, output, "Walk dog")
}
