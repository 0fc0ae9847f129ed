package ui

import (
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/TodoWing/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, content string, opts ...Option) (Model, *store.FileTaskStore) {
	t.Helper()
	fs := afero.NewMemMapFs()
	s := store.NewFileTaskStore(fs, "/tasks/todolist.txt")
	if content != "" {
		require.NoError(t, afero.WriteFile(fs, s.Path(), []byte(content), 0o644))
	}
	return NewModel(s, opts...), s
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = send(t, m, runes(string(r)))
	}
	return m
}

func fileLines(t *testing.T, s store.TaskStore) []string {
	t.Helper()
	lines, err := s.List()
	require.NoError(t, err)
	return lines
}

func TestModel_AddTask(t *testing.T) {
	m, s := newTestModel(t, "")

	m = typeText(t, m, "Buy milk")
	m = send(t, m, keyEnter)

	assert.Equal(t, []string{"[ ] Buy milk"}, fileLines(t, s))
	assert.Equal(t, []string{"[ ] Buy milk"}, m.Lines())
	assert.Empty(t, m.input.Value(), "input should be cleared after add")
	assert.Empty(t, m.DialogMessage())
}

func TestModel_AddEmptyShowsPopup(t *testing.T) {
	m, s := newTestModel(t, "")

	m = send(t, m, keyEnter)
	assert.Equal(t, MsgEnterTask, m.DialogMessage())
	assert.Empty(t, fileLines(t, s))

	m = send(t, m, keyEnter)
	assert.Empty(t, m.DialogMessage(), "enter should dismiss the popup")
}

func TestModel_CommandsWithoutSelection(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want string
	}{
		{runes("x"), MsgSelectToMark},
		{runes("e"), MsgSelectToEdit},
		{runes("d"), MsgSelectToDelete},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			m, _ := newTestModel(t, "")
			m = send(t, m, keyTab, tt.key)
			assert.Equal(t, tt.want, m.DialogMessage())
		})
	}
}

func TestModel_MarkCompleted(t *testing.T) {
	m, s := newTestModel(t, "[ ] Buy milk\n")

	m = send(t, m, keyTab, runes("x"))
	assert.Empty(t, m.DialogMessage())
	assert.Equal(t, []string{"[x] Buy milk"}, fileLines(t, s))
	assert.Equal(t, []string{"[x] Buy milk"}, m.Lines())

	m = send(t, m, runes("x"))
	assert.Equal(t, MsgAlreadyCompleted, m.DialogMessage())
	assert.Equal(t, []string{"[x] Buy milk"}, fileLines(t, s))
}

func TestModel_MarkCompletedFirstMatch(t *testing.T) {
	m, s := newTestModel(t, "[ ] A\n[ ] A\n")

	m = send(t, m, keyTab, keyDown)
	require.Equal(t, 1, m.Cursor())

	m = send(t, m, runes("x"))
	assert.Equal(t, []string{"[x] A", "[ ] A"}, fileLines(t, s))
}

func TestModel_SelectionGoneFromFile(t *testing.T) {
	m, s := newTestModel(t, "[ ] Buy milk\n")
	require.NoError(t, afero.WriteFile(s.Fs(), s.Path(), []byte("[ ] Walk dog\n"), 0o644))

	m = send(t, m, keyTab, runes("x"))
	assert.Equal(t, MsgSelectedNotFound, m.DialogMessage())
	assert.Equal(t, []string{"[ ] Walk dog"}, fileLines(t, s))
}

func TestModel_EditTask(t *testing.T) {
	m, s := newTestModel(t, "[x] Buy milk\n")

	m = send(t, m, keyTab, runes("e"))
	require.Equal(t, PromptEditTask, m.DialogMessage())
	assert.Equal(t, "Buy milk", m.dialog.input.Value())

	m = typeText(t, m, " now")
	m = send(t, m, keyEnter)

	assert.Empty(t, m.DialogMessage())
	assert.Equal(t, []string{"[x] Buy milk now"}, fileLines(t, s))
	assert.Equal(t, []string{"[x] Buy milk now"}, m.Lines())
}

func TestModel_EditCancelled(t *testing.T) {
	m, s := newTestModel(t, "[ ] Buy milk\n")

	m = send(t, m, keyTab, runes("e"))
	m = typeText(t, m, "n")
	m = send(t, m, keyEsc)

	assert.Empty(t, m.DialogMessage())
	assert.Equal(t, []string{"[ ] Buy milk"}, fileLines(t, s))
}

func TestModel_EditStaleSelection(t *testing.T) {
	m, s := newTestModel(t, "[ ] Buy milk\n")

	m = send(t, m, keyTab, runes("e"))
	require.NoError(t, afero.WriteFile(s.Fs(), s.Path(), []byte("[ ] Walk dog\n"), 0o644))
	m = send(t, m, keyEnter)

	assert.Equal(t, MsgEditNotFound, m.DialogMessage())
	assert.Equal(t, []string{"[ ] Walk dog"}, fileLines(t, s))
}

func TestModel_DeleteConfirm(t *testing.T) {
	m, s := newTestModel(t, "[ ] A\n[ ] B\n")

	m = send(t, m, keyTab, keyDown, runes("d"))
	require.Equal(t, MsgConfirmDelete, m.DialogMessage())

	m = send(t, m, runes("n"))
	assert.Empty(t, m.DialogMessage())
	assert.Equal(t, []string{"[ ] A", "[ ] B"}, fileLines(t, s))

	m = send(t, m, runes("d"), runes("y"))
	assert.Equal(t, []string{"[ ] A"}, fileLines(t, s))
	assert.Equal(t, []string{"[ ] A"}, m.Lines())
	assert.Equal(t, 0, m.Cursor(), "cursor should stay within the shorter list")
}

func TestModel_DeleteWithoutConfirm(t *testing.T) {
	m, s := newTestModel(t, "[ ] A\n", WithConfirmDelete(false))

	m = send(t, m, keyTab, runes("d"))
	assert.Empty(t, m.DialogMessage())
	assert.Empty(t, fileLines(t, s))
	assert.Empty(t, m.Lines())
}

func TestModel_Navigation(t *testing.T) {
	m, _ := newTestModel(t, "[ ] A\n[ ] B\n[ ] C\n")

	m = send(t, m, keyTab, keyUp)
	assert.Equal(t, 0, m.Cursor())

	m = send(t, m, keyDown, keyDown, keyDown)
	assert.Equal(t, 2, m.Cursor())

	m = send(t, m, runes("k"))
	assert.Equal(t, 1, m.Cursor())
}

func TestModel_ScrollsLongList(t *testing.T) {
	m, _ := newTestModel(t, "[ ] 1\n[ ] 2\n[ ] 3\n[ ] 4\n", WithListHeight(2))

	m = send(t, m, keyTab, keyDown, keyDown, keyDown)
	assert.Equal(t, 3, m.Cursor())
	assert.Equal(t, 2, m.offset)
}

func TestModel_FocusSwitching(t *testing.T) {
	m, _ := newTestModel(t, "")
	require.Equal(t, focusInput, m.focus)

	m = send(t, m, keyTab)
	assert.Equal(t, focusList, m.focus)

	m = send(t, m, runes("a"))
	assert.Equal(t, focusInput, m.focus)

	m = send(t, m, keyEsc)
	assert.Equal(t, focusList, m.focus)
}

func TestModel_TypingLettersInInput(t *testing.T) {
	m, _ := newTestModel(t, "[ ] A\n")

	// command keys are plain text while the entry field has focus
	m = typeText(t, m, "xedq")
	assert.Equal(t, "xedq", m.input.Value())
	assert.False(t, m.Quitting())
	assert.Empty(t, m.DialogMessage())
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, "")

	next, cmd := send(t, m, keyTab).Update(runes("q"))
	assert.True(t, next.(Model).Quitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestModel_ForceQuitFromDialog(t *testing.T) {
	m, _ := newTestModel(t, "")
	m = send(t, m, keyEnter)
	require.NotEmpty(t, m.DialogMessage())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, next.(Model).Quitting())
	assert.NotNil(t, cmd)
}

func TestModel_FileChangedReloads(t *testing.T) {
	m, s := newTestModel(t, "")
	require.NoError(t, s.Add("Walk dog"))

	m = send(t, m, fileChangedMsg{})
	assert.Equal(t, []string{"[ ] Walk dog"}, m.Lines())
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t, "[ ] Buy milk\n[x] Walk dog\n", WithTitle("Groceries"))

	view := m.View()
	assert.Contains(t, view, "Groceries")
	assert.Contains(t, view, "Buy milk")
	assert.Contains(t, view, "Walk dog")
	for _, c := range Buttons {
		assert.Contains(t, view, c.String())
	}

	m = send(t, m, keyEnter)
	assert.Contains(t, m.View(), MsgEnterTask)
}

func TestWaitForChange(t *testing.T) {
	ch := make(chan struct{}, 1)
	m, _ := newTestModel(t, "", WithChanges(ch))

	ch <- struct{}{}
	cmd := m.waitForChange()
	require.NotNil(t, cmd)
	assert.Equal(t, fileChangedMsg{}, cmd())

	close(ch)
	assert.Nil(t, m.waitForChange()())

	m2, _ := newTestModel(t, "")
	assert.Nil(t, m2.waitForChange())
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "Add Task", CmdAdd.String())
	assert.Equal(t, "Mark Completed", CmdComplete.String())
	assert.Equal(t, "Edit Task", CmdEdit.String())
	assert.Equal(t, "Delete Task", CmdDelete.String())
	assert.Equal(t, "Exit", CmdExit.String())
	assert.Equal(t, "Command(42)", Command(42).String())
}

func TestDescriptionOf(t *testing.T) {
	assert.Equal(t, "Buy milk", descriptionOf("[ ] Buy milk"))
	assert.Equal(t, "Walk dog", descriptionOf("[x] Walk dog"))
	assert.Equal(t, "", descriptionOf("[ ]"))
	assert.Equal(t, "", descriptionOf(""))

	got := descriptionOf("日本語のタスク")
	assert.Equal(t, "タスク", got)
	assert.True(t, utf8.ValidString(got))
}

func TestHandlersCoverButtons(t *testing.T) {
	for _, c := range Buttons {
		_, ok := handlers[c]
		assert.True(t, ok, "no handler for %s", c)
	}
}

func TestModel_StoreErrorShowsPopup(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/tasks/todolist.txt", []byte("[ ] Walk dog\n"), 0o644))
	s := store.NewFileTaskStore(afero.NewReadOnlyFs(mem), "/tasks/todolist.txt")
	m := NewModel(s)
	require.Equal(t, []string{"[ ] Walk dog"}, m.Lines())

	m = typeText(t, m, "Buy milk")
	m = send(t, m, keyEnter)
	assert.Contains(t, m.DialogMessage(), "Error: could not add the task")

	m = send(t, m, keyEnter, keyTab, runes("x"))
	assert.Contains(t, m.DialogMessage(), "Error: could not mark the task")
	assert.Equal(t, []string{"[ ] Walk dog"}, fileLines(t, s))
}
