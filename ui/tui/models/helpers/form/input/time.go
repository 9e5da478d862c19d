// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/timepicker/i18n"
	"github.com/toeirei/timepicker/internal/logging"
	"github.com/toeirei/timepicker/timefield"
	"github.com/toeirei/timepicker/ui/tui/models/helpers/form"
	"github.com/toeirei/timepicker/ui/tui/util"
)

// Time is a form input that keeps its text in "HH:MM" form while typing.
// Get returns a *timefield.Clock, or nil while nothing was entered.
type Time struct {
	Label       string
	Placeholder string
	KeyMap      TimeKeyMap

	// Now and WriteClipboard are swapped out in tests.
	Now            func() time.Time
	WriteClipboard func(string) error

	input   textinput.Model
	field   *timefield.Field
	focused bool
}

type TimeKeyMap struct {
	Next key.Binding
	Now  key.Binding
	Copy key.Binding
}

func (k TimeKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Now, k.Copy} }

func (k TimeKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Now, k.Copy}} }

func NewTime(label string, opts ...timefield.Option) *Time {
	t := &Time{
		Label:       label,
		Placeholder: i18n.T("form.time_placeholder"),
		KeyMap: TimeKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("help.next")),
			),
			Now: key.NewBinding(
				key.WithKeys("ctrl+t"),
				key.WithHelp("ctrl+t", i18n.T("help.now")),
			),
			Copy: key.NewBinding(
				key.WithKeys("ctrl+y"),
				key.WithHelp("ctrl+y", i18n.T("help.copy")),
			),
		},
		Now:            time.Now,
		WriteClipboard: clipboard.WriteAll,
		input:          textinput.New(),
	}
	t.input.Prompt = ""
	t.field = timefield.New(&t.input, opts...)
	return t
}

// Field exposes the underlying time field.
func (t *Time) Field() *timefield.Field {
	return t.field
}

func (t *Time) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Time) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	t.focused = true
	return tea.Batch(t.input.Focus(), util.AnnounceKeyMapCmd(baseKeyMap, t.KeyMap))
}

func (t *Time) Get() any {
	if !t.field.HourFilled() {
		return nil
	}
	c := t.field.Time()
	return &c
}

func (t *Time) Init() tea.Cmd {
	return nil
}

func (t *Time) Reset() {
	t.field.Clear()
}

// Set accepts nil, timefield.Clock, *timefield.Clock, time.Time, an
// "HH:MM" string or a map produced by mapstructure from a Clock. Anything
// else is ignored. Text that is not a valid time is shown as is and gets
// re-formatted on the next key.
func (t *Time) Set(value any) {
	switch v := value.(type) {
	case nil:
		t.field.Clear()
	case timefield.Clock:
		t.field.SetTime(v)
	case *timefield.Clock:
		if v == nil {
			t.field.Clear()
		} else {
			t.field.SetTime(*v)
		}
	case time.Time:
		if v.IsZero() {
			t.field.Clear()
		} else {
			t.field.SetTime(timefield.ClockOf(v))
		}
	case string:
		if c, err := timefield.ParseClock(v); err == nil {
			t.field.SetTime(c)
		} else {
			t.input.SetValue(v)
		}
	case map[string]any:
		var c timefield.Clock
		if err := mapstructure.Decode(v, &c); err != nil {
			logging.Warnf("ignoring time value %v: %v", v, err)
			return
		}
		t.field.SetTime(c)
	default:
		logging.Debugf("ignoring time value of type %T", value)
		return
	}
	t.input.CursorEnd()
}

func (t *Time) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return cmd, form.ActionNone
	}

	switch {
	case key.Matches(kmsg, t.KeyMap.Next):
		return nil, form.ActionNext
	case key.Matches(kmsg, t.KeyMap.Now):
		t.field.SetTime(timefield.ClockOf(t.Now()))
		t.input.CursorEnd()
		return nil, form.ActionNone
	case key.Matches(kmsg, t.KeyMap.Copy):
		return t.copyCmd(), form.ActionNone
	}

	// textinput applies the keystroke, then the field re-formats the result
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	t.field.KeyReleased(t.classify(kmsg))
	return cmd, form.ActionNone
}

// classify maps a key message onto the key classes of the time field. Every
// binding that makes the textinput delete text counts as a deletion.
func (t *Time) classify(msg tea.KeyMsg) timefield.Key {
	km := t.input.KeyMap
	switch {
	case key.Matches(msg, km.DeleteCharacterBackward, km.DeleteWordBackward, km.DeleteBeforeCursor):
		return timefield.KeyBackspace
	case key.Matches(msg, km.DeleteCharacterForward, km.DeleteWordForward, km.DeleteAfterCursor):
		return timefield.KeyDelete
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Paste {
		return timefield.KeyForRune(msg.Runes[0])
	}
	return timefield.ParseKey(msg.String())
}

func (t *Time) copyCmd() tea.Cmd {
	if !t.field.HourFilled() {
		return nil
	}
	text := t.field.Time().String()
	write := t.WriteClipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			logging.Warnf("could not copy %s to clipboard: %v", text, err)
		}
		return nil
	}
}

func (t *Time) View(width int) string {
	return renderLabeled(t.Label, t.focused, width, &t.input, t.Placeholder)
}

var _ form.FormInput = (*Time)(nil)
