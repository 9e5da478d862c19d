// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root is the top-level model of the picker: a date field, a start
// and an end time field and a confirm button above the key help.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/timepicker/buildvars"
	"github.com/toeirei/timepicker/i18n"
	"github.com/toeirei/timepicker/internal/logging"
	"github.com/toeirei/timepicker/timefield"
	"github.com/toeirei/timepicker/ui/tui/models/components/keyhelp"
	"github.com/toeirei/timepicker/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/timepicker/ui/tui/models/helpers/form/input"
	windowtitle "github.com/toeirei/timepicker/ui/tui/models/helpers/title"
	"github.com/toeirei/timepicker/ui/tui/util"
)

// formWidth is the widest the form grows on large terminals.
const formWidth = 60

// Result is what the form decodes into on submit.
type Result struct {
	Date  string           `mapstructure:"date"`
	Start *timefield.Clock `mapstructure:"start"`
	End   *timefield.Clock `mapstructure:"end"`
}

type Model struct {
	form    form.Form[Result]
	help    *keyhelp.Model
	title   *windowtitle.TitleHandler
	baseKey KeyMap
	labels  map[string]string
	active  string
	size    util.Size

	result    Result
	submitted bool
}

// New builds the picker prefilled with initial. Nil times stay empty.
func New(initial Result, placeholder string) *Model {
	m := &Model{
		help:    keyhelp.New(),
		baseKey: newBaseKeyMap(),
		labels: map[string]string{
			"date":  i18n.T("form.date"),
			"start": i18n.T("form.start"),
			"end":   i18n.T("form.end"),
		},
	}

	m.title = windowtitle.NewHandler(fmt.Sprintf("%s %s", i18n.T("app.title"), buildvars.VersionOrDefault("dev")), " | ")

	start := forminput.NewTime(m.labels["start"])
	end := forminput.NewTime(m.labels["end"])
	if placeholder != "" {
		start.Placeholder, end.Placeholder = placeholder, placeholder
	}

	m.form = form.New(
		form.WithInput[Result]("date", forminput.NewText(m.labels["date"], i18n.T("form.date_placeholder"))),
		form.WithRow[Result](
			form.Item{ID: "start", Input: start},
			form.Item{ID: "end", Input: end},
		),
		form.WithInput[Result]("submit", forminput.NewButton(i18n.T("form.submit"), false)),
		form.WithOnSubmit(m.onSubmit),
	)
	m.form.SetWidth(m.size.WidthUpTo(formWidth))
	if err := m.form.Set(initial); err != nil {
		logging.Warnf("could not prefill form: %v", err)
	}
	return m
}

func (m *Model) onSubmit(result Result, err error) tea.Cmd {
	if err != nil {
		logging.Errorf("could not read form: %v", err)
		return nil
	}
	m.result, m.submitted = result, true
	return tea.Quit
}

// Result returns the submitted values. ok is false when the picker was left
// without submitting.
func (m *Model) Result() (Result, bool) {
	return m.result, m.submitted
}

func (m *Model) Init() tea.Cmd {
	return tea.Sequence(
		m.title.Init(),
		m.form.Init(),
		m.form.Focus(m.baseKey),
		m.titleCmd(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		m.form.SetWidth(m.size.WidthUpTo(formWidth))
		return m, m.help.Update(msg)
	case util.AnnounceKeyMapMsg:
		return m, m.help.Update(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.baseKey.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.baseKey.Help):
			m.help.ToggleExpanded()
			return m, nil
		}
	}

	if cmd := m.title.Handle(msg); cmd != nil {
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, tea.Batch(cmd, m.titleCmd())
}

// titleCmd announces the label of the focused field once it changed.
func (m *Model) titleCmd() tea.Cmd {
	id := m.form.ActiveID()
	if id == m.active {
		return nil
	}
	m.active = id
	return windowtitle.Set(m.labels[id])
}

func (m *Model) View() string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("60")).
		Bold(true).
		Padding(0, 1).
		Render(i18n.T("app.title"))

	footer := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(m.help.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.form.View(), "", footer)
}

var _ tea.Model = (*Model)(nil)
