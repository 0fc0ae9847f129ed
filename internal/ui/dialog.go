package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogInfo
	dialogConfirm
	dialogPrompt
)

// onAnswer runs when a confirm or prompt dialog is accepted. Prompts pass
// the entered text; confirms pass "".
type onAnswer func(m Model, answer string) (Model, tea.Cmd)

// dialog is a modal popup. While one is open it receives every key.
type dialog struct {
	kind    dialogKind
	message string
	input   textinput.Model
	onOK    onAnswer
}

func (m Model) showInfo(message string) Model {
	m.dialog = dialog{kind: dialogInfo, message: message}
	m.input.Blur()
	return m
}

func (m Model) showConfirm(message string, onOK onAnswer) Model {
	m.dialog = dialog{kind: dialogConfirm, message: message, onOK: onOK}
	m.input.Blur()
	return m
}

func (m Model) showPrompt(message, defaultText string, onOK onAnswer) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	ti.SetValue(defaultText)
	ti.CursorEnd()
	ti.Focus()

	m.dialog = dialog{kind: dialogPrompt, message: message, input: ti, onOK: onOK}
	m.input.Blur()
	return m
}

// closeDialog dismisses the popup and restores focus.
func (m Model) closeDialog() Model {
	m.dialog = dialog{}
	if m.focus == focusInput {
		m.input.Focus()
	}
	return m
}

// DialogMessage returns the text of the open popup, or "" if none is open.
func (m Model) DialogMessage() string {
	if m.dialog.kind == dialogNone {
		return ""
	}
	return m.dialog.message
}

func (m Model) updateDialog(msg tea.KeyMsg) (Model, tea.Cmd) {
	d := m.dialog
	switch d.kind {
	case dialogInfo:
		if key.Matches(msg, m.keys.Submit, m.keys.Back) || msg.String() == " " {
			return m.closeDialog(), nil
		}

	case dialogConfirm:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m = m.closeDialog()
			return d.onOK(m, "")
		case key.Matches(msg, m.keys.Cancel):
			return m.closeDialog(), nil
		}

	case dialogPrompt:
		switch {
		case key.Matches(msg, m.keys.Submit):
			answer := d.input.Value()
			m = m.closeDialog()
			return d.onOK(m, answer)
		case key.Matches(msg, m.keys.Back):
			return m.closeDialog(), nil
		}
		var cmd tea.Cmd
		m.dialog.input, cmd = m.dialog.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) viewDialog() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render(m.dialog.message))
	sb.WriteString("\n")

	switch m.dialog.kind {
	case dialogInfo:
		sb.WriteString("\n" + StyleSubtle.Render("[ OK ]  enter"))
	case dialogConfirm:
		sb.WriteString("\n" + StyleSubtle.Render("[ OK ]  enter/y    [ Cancel ]  esc/n"))
	case dialogPrompt:
		sb.WriteString(m.dialog.input.View())
		sb.WriteString("\n\n" + StyleSubtle.Render("[ OK ]  enter    [ Cancel ]  esc"))
	}
	return StyleDialogBox.Render(sb.String())
}
