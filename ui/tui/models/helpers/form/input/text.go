// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/timepicker/i18n"
	"github.com/toeirei/timepicker/ui/tui/models/helpers/form"
	"github.com/toeirei/timepicker/ui/tui/util"
)

type Text struct {
	Label       string
	Placeholder string
	KeyMap      TextKeyMap

	input   textinput.Model
	focused bool
}

type TextKeyMap struct {
	Next key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding { return []key.Binding{} }

func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{} }

func NewText(label, placeholder string) *Text {
	return &Text{
		Label:       label,
		Placeholder: placeholder,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("help.next")),
			),
		},
		input: textinput.New(),
	}
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	t.focused = true
	return tea.Batch(t.input.Focus(), util.AnnounceKeyMapCmd(baseKeyMap, t.KeyMap))
}

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Reset() {
	t.input.SetValue("")
}

func (t *Text) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
		t.input.CursorEnd()
	}
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, t.KeyMap.Next) {
		return nil, form.ActionNext
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

func (t *Text) View(width int) string {
	return renderLabeled(t.Label, t.focused, width, &t.input, t.Placeholder)
}

// renderLabeled draws a label line above a textinput the way every text
// based input of the form does.
func renderLabeled(label string, focused bool, width int, input *textinput.Model, placeholder string) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Width(width)

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	if focused {
		label = focusedStyle.Render(label)
	} else {
		label = labelStyle.Render(label)
	}

	input.Width = util.Clamp(1, width-2, width)
	input.Placeholder = placeholder

	return lipgloss.JoinVertical(lipgloss.Left, label, input.View())
}

var _ form.FormInput = (*Text)(nil)
