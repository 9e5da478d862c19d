// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

func NewHandler(base string, delimiter string) *TitleHandler {
	return &TitleHandler{
		Base:      base,
		Delimiter: delimiter,
	}
}

// TitleHandler keeps the terminal window title at Base, followed by the
// detail last announced with Set.
type TitleHandler struct {
	Base      string
	Delimiter string
	current   string
}

func (t TitleHandler) Title() string {
	if t.current != "" {
		return t.Base + t.Delimiter + t.current
	}
	return t.Base
}

func (t TitleHandler) Init() tea.Cmd {
	return tea.SetWindowTitle(t.Title())
}

func (t *TitleHandler) Handle(msg tea.Msg) tea.Cmd {
	if title, ok := msg.(titleMsg); ok {
		if t.current != string(title) {
			t.current = string(title)
			return tea.SetWindowTitle(t.Title())
		}
	}
	return nil
}
