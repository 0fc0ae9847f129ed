package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/TodoWing/models"
	"github.com/josephgoksu/TodoWing/store"
)

// WindowTitle is the terminal title set while the window is open.
const WindowTitle = "My To-Do App"

const (
	defaultListHeight = 10
	defaultListWidth  = 50
)

var textinputBlink = textinput.Blink

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// fileChangedMsg is sent when the task file is modified outside the window.
type fileChangedMsg struct{}

// Model is the task window: a list of lines, an entry field, and the
// command buttons.
type Model struct {
	store         store.TaskStore
	title         string
	confirmDelete bool
	changes       <-chan struct{}

	lines      []string
	cursor     int
	offset     int
	listHeight int

	focus  focusArea
	input  textinput.Model
	help   help.Model
	keys   KeyMap
	dialog dialog

	width    int
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithTitle sets the heading drawn above the list.
func WithTitle(title string) Option {
	return func(m *Model) {
		if title != "" {
			m.title = title
		}
	}
}

// WithConfirmDelete toggles the confirmation popup before a delete.
func WithConfirmDelete(confirm bool) Option {
	return func(m *Model) { m.confirmDelete = confirm }
}

// WithChanges makes the window reload whenever ch receives.
func WithChanges(ch <-chan struct{}) Option {
	return func(m *Model) { m.changes = ch }
}

// WithListHeight sets the number of visible rows.
func WithListHeight(rows int) Option {
	return func(m *Model) {
		if rows > 0 {
			m.listHeight = rows
		}
	}
}

// NewModel creates the window and loads the current tasks.
func NewModel(s store.TaskStore, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "New task"
	ti.CharLimit = 256
	ti.Width = defaultListWidth - 4
	ti.Prompt = "› "
	ti.Focus()

	m := Model{
		store:         s,
		title:         "To-Do List",
		confirmDelete: true,
		listHeight:    defaultListHeight,
		focus:         focusInput,
		input:         ti,
		help:          help.New(),
		keys:          DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m.refresh()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinputBlink, tea.SetWindowTitle(WindowTitle), m.waitForChange())
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// Lines returns the task lines currently shown.
func (m Model) Lines() []string {
	return m.lines
}

// Cursor returns the index of the highlighted line.
func (m Model) Cursor() int {
	return m.cursor
}

// Quitting reports whether the window has been closed.
func (m Model) Quitting() bool {
	return m.quitting
}

// selection returns the highlighted line. There is no selection when the
// list is empty.
func (m Model) selection() (string, bool) {
	if len(m.lines) == 0 || m.cursor < 0 || m.cursor >= len(m.lines) {
		return "", false
	}
	return m.lines[m.cursor], true
}

// refresh reloads the list from the store and keeps the cursor in range.
func (m Model) refresh() Model {
	lines, err := m.store.List()
	if err != nil {
		slog.Warn("failed to reload tasks", "path", m.store.Path(), "error", err)
		return m.showInfo(fmt.Sprintf("Error: could not read tasks: %v", err))
	}
	m.lines = lines
	if m.cursor >= len(m.lines) {
		m.cursor = len(m.lines) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampOffset()
	return m
}

func (m *Model) clampOffset() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.listHeight {
		m.offset = m.cursor - m.listHeight + 1
	}
	if last := len(m.lines) - m.listHeight; m.offset > last {
		m.offset = last
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) setFocus(f focusArea) Model {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case fileChangedMsg:
		slog.Debug("task file changed on disk", "path", m.store.Path())
		if m.dialog.kind == dialogNone {
			m = m.refresh()
		}
		return m, m.waitForChange()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return handleExit(m)
		}
		if m.dialog.kind != dialogNone {
			return m.updateDialog(msg)
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	switch {
	case m.dialog.kind == dialogPrompt:
		m.dialog.input, cmd = m.dialog.input.Update(msg)
	case m.dialog.kind == dialogNone && m.focus == focusInput:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.dispatch(CmdAdd)
	case key.Matches(msg, m.keys.SwitchFocus), key.Matches(msg, m.keys.Back):
		return m.setFocus(focusList), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.clampOffset()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.lines)-1 {
			m.cursor++
			m.clampOffset()
		}
	case key.Matches(msg, m.keys.SwitchFocus), key.Matches(msg, m.keys.FocusInput):
		return m.setFocus(focusInput), textinputBlink
	case key.Matches(msg, m.keys.Submit):
		return m.dispatch(CmdAdd)
	case key.Matches(msg, m.keys.Complete):
		return m.dispatch(CmdComplete)
	case key.Matches(msg, m.keys.Edit):
		return m.dispatch(CmdEdit)
	case key.Matches(msg, m.keys.Delete):
		return m.dispatch(CmdDelete)
	case key.Matches(msg, m.keys.Quit):
		return m.dispatch(CmdExit)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(StyleHeader.Render(m.title))
	sb.WriteString("\n")

	listStyle := StyleListBox
	inputStyle := StyleInputBoxFocused
	if m.focus == focusList {
		listStyle = StyleListBoxFocused
		inputStyle = StyleInputBox
	}
	sb.WriteString(listStyle.Width(defaultListWidth).Render(m.viewList()))
	sb.WriteString("\n")
	sb.WriteString(inputStyle.Width(defaultListWidth).Render(m.input.View()))
	sb.WriteString("\n")
	sb.WriteString(m.viewButtons())
	sb.WriteString("\n\n")

	if m.dialog.kind != dialogNone {
		sb.WriteString(m.viewDialog())
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.help.View(m.keys))
	}
	return sb.String()
}

func (m Model) viewList() string {
	rows := make([]string, 0, m.listHeight)
	end := m.offset + m.listHeight
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for i := m.offset; i < end; i++ {
		line := Truncate(m.lines[i], defaultListWidth-4)
		switch {
		case i == m.cursor:
			rows = append(rows, StyleTaskSelected.Render("> "+line))
		case strings.HasPrefix(m.lines[i], string(models.StatusCompleted)):
			rows = append(rows, "  "+StyleTaskCompleted.Render(line))
		default:
			rows = append(rows, "  "+StyleTaskPending.Render(line))
		}
	}
	for len(rows) < m.listHeight {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

func (m Model) viewButtons() string {
	bindings := map[Command]key.Binding{
		CmdAdd:      m.keys.Submit,
		CmdComplete: m.keys.Complete,
		CmdEdit:     m.keys.Edit,
		CmdDelete:   m.keys.Delete,
		CmdExit:     m.keys.Quit,
	}
	parts := make([]string, 0, len(Buttons))
	for _, c := range Buttons {
		k := bindings[c].Help().Key
		parts = append(parts, StyleButton.Render(fmt.Sprintf("[%s %s]", StyleButtonKey.Render(k), c)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Run opens the window on the terminal and blocks until it is closed.
// When watch is true, edits made to the task file by other processes are
// picked up while the window is open.
func Run(ctx context.Context, s store.TaskStore, watch bool, opts ...Option) error {
	if watch {
		w, err := store.NewWatcher(ctx, s.Path())
		if err != nil {
			slog.Warn("file watch disabled", "path", s.Path(), "error", err)
		} else {
			defer w.Stop()
			opts = append(opts, WithChanges(w.Changes()))
		}
	}

	p := tea.NewProgram(NewModel(s, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("task window: %w", err)
	}
	return nil
}
