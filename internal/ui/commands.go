package ui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/TodoWing/internal/logger"
	"github.com/josephgoksu/TodoWing/models"
	"github.com/josephgoksu/TodoWing/store"
)

// Command is one of the window's buttons.
type Command int

const (
	CmdAdd Command = iota
	CmdComplete
	CmdEdit
	CmdDelete
	CmdExit
)

// Buttons lists the commands in the order they are drawn.
var Buttons = []Command{CmdAdd, CmdComplete, CmdEdit, CmdDelete, CmdExit}

// String returns the button label.
func (c Command) String() string {
	switch c {
	case CmdAdd:
		return "Add Task"
	case CmdComplete:
		return "Mark Completed"
	case CmdEdit:
		return "Edit Task"
	case CmdDelete:
		return "Delete Task"
	case CmdExit:
		return "Exit"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// slug is the short name recorded in logs and crash reports.
func (c Command) slug() string {
	switch c {
	case CmdAdd:
		return "add"
	case CmdComplete:
		return "complete"
	case CmdEdit:
		return "edit"
	case CmdDelete:
		return "delete"
	case CmdExit:
		return "exit"
	default:
		return "unknown"
	}
}

// User-facing messages.
const (
	MsgEnterTask         = "Please enter a task."
	MsgSelectToMark      = "Please select a task to mark."
	MsgSelectToEdit      = "Please select a task to edit."
	MsgSelectToDelete    = "Please select a task to delete."
	MsgAlreadyCompleted  = "This task is already completed."
	MsgSelectedNotFound  = "Error: The selected task could not be found."
	MsgEditNotFound      = "Error: Task not found in list."
	MsgConfirmDelete     = "Are you sure you want to delete this task?"
	PromptEditTask       = "Edit task:"
	statusDescriptionCol = 4
)

type handler func(m Model) (Model, tea.Cmd)

// handlers maps each button to its action.
var handlers = map[Command]handler{
	CmdAdd:      handleAdd,
	CmdComplete: handleComplete,
	CmdEdit:     handleEdit,
	CmdDelete:   handleDelete,
	CmdExit:     handleExit,
}

// dispatch runs the handler bound to c.
func (m Model) dispatch(c Command) (Model, tea.Cmd) {
	h, ok := handlers[c]
	if !ok {
		return m, nil
	}
	logger.SetLastAction(c.slug())
	slog.Debug("ui command", "command", c.slug())
	return h(m)
}

// storeFailed reports an I/O failure and keeps the loop running.
func (m Model) storeFailed(action string, err error) (Model, tea.Cmd) {
	slog.Warn("task store operation failed", "action", action, "error", err)
	return m.showInfo(fmt.Sprintf("Error: could not %s: %v", action, err)), nil
}

func handleAdd(m Model) (Model, tea.Cmd) {
	task := m.input.Value()
	if task == "" {
		return m.showInfo(MsgEnterTask), nil
	}
	logger.SetLastInput(task)
	if err := models.ValidateInput(task); err != nil {
		return m.showInfo(fmt.Sprintf("Invalid task: %v", err)), nil
	}
	if err := m.store.Add(task); err != nil {
		return m.storeFailed("add the task", err)
	}
	m.input.SetValue("")
	return m.refresh(), nil
}

// locate re-reads the store and finds the selected line in it.
func (m Model) locate(selected string) (int, error) {
	lines, err := m.store.List()
	if err != nil {
		return -1, err
	}
	return store.IndexOf(lines, selected), nil
}

func handleComplete(m Model) (Model, tea.Cmd) {
	selected, ok := m.selection()
	if !ok {
		return m.showInfo(MsgSelectToMark), nil
	}
	idx, err := m.locate(selected)
	if err != nil {
		return m.storeFailed("read tasks", err)
	}
	if idx < 0 {
		return m.showInfo(MsgSelectedNotFound), nil
	}
	done, err := m.store.MarkCompleted(idx)
	if err != nil {
		return m.storeFailed("mark the task", err)
	}
	if !done {
		return m.showInfo(MsgAlreadyCompleted), nil
	}
	return m.refresh(), nil
}

// descriptionOf strips the status column from a displayed line.
func descriptionOf(line string) string {
	r := []rune(line)
	if len(r) <= statusDescriptionCol {
		return ""
	}
	return strings.TrimSpace(string(r[statusDescriptionCol:]))
}

func handleEdit(m Model) (Model, tea.Cmd) {
	selected, ok := m.selection()
	if !ok {
		return m.showInfo(MsgSelectToEdit), nil
	}
	return m.showPrompt(PromptEditTask, descriptionOf(selected), func(m Model, answer string) (Model, tea.Cmd) {
		if answer == "" {
			return m, nil
		}
		logger.SetLastInput(answer)
		if err := models.ValidateInput(answer); err != nil {
			return m.showInfo(fmt.Sprintf("Invalid task: %v", err)), nil
		}
		idx, err := m.locate(selected)
		if err != nil {
			return m.storeFailed("read tasks", err)
		}
		if idx < 0 {
			return m.showInfo(MsgEditNotFound), nil
		}
		edited, err := m.store.Edit(idx, answer)
		if err != nil {
			return m.storeFailed("edit the task", err)
		}
		if !edited {
			return m.showInfo(MsgEditNotFound), nil
		}
		return m.refresh(), nil
	}), textinputBlink
}

func handleDelete(m Model) (Model, tea.Cmd) {
	selected, ok := m.selection()
	if !ok {
		return m.showInfo(MsgSelectToDelete), nil
	}
	idx, err := m.locate(selected)
	if err != nil {
		return m.storeFailed("read tasks", err)
	}
	if idx < 0 {
		return m.showInfo(MsgSelectedNotFound), nil
	}

	remove := func(m Model, _ string) (Model, tea.Cmd) {
		if _, err := m.store.Delete(idx); err != nil {
			return m.storeFailed("delete the task", err)
		}
		return m.refresh(), nil
	}
	if !m.confirmDelete {
		return remove(m, "")
	}
	return m.showConfirm(MsgConfirmDelete, remove), nil
}

func handleExit(m Model) (Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}
