// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/timepicker/ui/tui/util"
	"github.com/toeirei/timepicker/util/slicest"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

// Form lays out inputs in rows, moves focus between them and decodes their
// values into T with mapstructure, keyed by input ID.
type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	keyMap      KeyMap
	baseKeyMap  help.KeyMap
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	if f.size.Update(msg) {
		return f, nil
	}

	if f.focused && len(f.items) > 0 {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(kmsg, f.keyMap.Next):
				return f, f.changeActiveIndex(1)
			case key.Matches(kmsg, f.keyMap.Prev):
				return f, f.changeActiveIndex(-1)
			}
		}

		return f, f.updateActiveInput(msg)
	}

	return f, nil
}

func (f Form[T]) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, func(row formRow) string {
			return lipgloss.JoinHorizontal(
				lipgloss.Top,
				slicest.Map(row.items, func(itemIndex int) string {
					return f.items[itemIndex].input.View(f.size.Width / len(row.items))
				})...,
			)
		})...,
	)
}

// SetWidth sets the width the rows are laid out in.
func (f *Form[T]) SetWidth(width int) {
	f.size.Width = width
}

// ActiveID returns the ID of the focused input.
func (f *Form[T]) ActiveID() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

func (f *Form[T]) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	f.focused, f.baseKeyMap = true, baseKeyMap
	if len(f.items) == 0 {
		return util.AnnounceKeyMapCmd(f.baseKeyMap, f.keyMap)
	}
	return f.items[f.activeIndex].input.Focus(util.MergeKeyMaps(f.baseKeyMap, f.keyMap))
}

func (f *Form[T]) Blur() {
	f.focused, f.baseKeyMap = false, nil
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}

	return f.changeActiveIndex(-f.activeIndex)
}

func (f *Form[T]) Submit() tea.Cmd {
	var resetCmd tea.Cmd
	data, err := f.Get()
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	var submitCmd tea.Cmd
	if f.OnSubmit != nil {
		submitCmd = f.OnSubmit(data, err)
	}
	return tea.Batch(resetCmd, submitCmd)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var (
		updateCmd tea.Cmd
		actionCmd tea.Cmd
		action    Action
	)

	updateCmd, action = f.items[f.activeIndex].input.Update(msg)

	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		if f.OnCancel != nil {
			actionCmd = f.OnCancel()
		}
	}

	return tea.Batch(updateCmd, actionCmd)
}

func (f *Form[T]) changeActiveIndex(index int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	index = index % len(f.items)

	if index != 0 {
		oldActiveIndex := f.activeIndex
		f.activeIndex += index

		if f.activeIndex > len(f.items)-1 {
			f.activeIndex = 0
		}
		if f.activeIndex < 0 {
			f.activeIndex = len(f.items) - 1
		}

		f.items[oldActiveIndex].input.Blur()
	}

	if !f.focused {
		return nil
	}
	return f.items[f.activeIndex].input.Focus(util.MergeKeyMaps(f.baseKeyMap, f.keyMap))
}

// Get collects every input's value under its ID and decodes them into T.
func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if value := item.input.Get(); value != nil {
			values[item.id] = value
		}
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

// Set hands every field of data to the input with the matching ID.
func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
