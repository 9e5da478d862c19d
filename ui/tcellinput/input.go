// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tcellinput hosts a time field on a plain tcell screen.
package tcellinput

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/toeirei/timepicker/timefield"
)

// Action tells the caller what a key did to the input.
type Action int

const (
	ActionNone Action = iota
	ActionChanged
	ActionSubmit
	ActionCancel
)

// Input is a single-line time field drawn with tcell
type Input struct {
	Prompt      string
	Placeholder string
	Hint        string

	Style            tcell.Style
	PromptStyle      tcell.Style
	PlaceholderStyle tcell.Style
	HintStyle        tcell.Style

	buf   *timefield.StringBuffer
	field *timefield.Field
}

// New creates an empty input. opts are passed to the underlying field.
func New(opts ...timefield.Option) *Input {
	in := &Input{
		Placeholder:      "HH:MM",
		Style:            tcell.StyleDefault,
		PromptStyle:      tcell.StyleDefault.Bold(true),
		PlaceholderStyle: tcell.StyleDefault.Dim(true),
		HintStyle:        tcell.StyleDefault.Foreground(tcell.ColorGray),
		buf:              timefield.NewStringBuffer(""),
	}
	in.field = timefield.New(in.buf, opts...)
	return in
}

// Field exposes the formatting state and accessors
func (in *Input) Field() *timefield.Field { return in.field }

// Cursor returns the caret position in runes
func (in *Input) Cursor() int { return in.buf.Cursor() }

// HandleKey applies the key to the text and reformats it
func (in *Input) HandleKey(ev *tcell.EventKey) Action {
	return in.handle(ev.Key(), ev.Rune())
}

func (in *Input) handle(k tcell.Key, r rune) Action {
	var key timefield.Key

	switch k {
	case tcell.KeyEnter:
		return ActionSubmit
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionCancel
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		in.buf.Backspace()
		key = timefield.KeyBackspace
	case tcell.KeyDelete, tcell.KeyCtrlD:
		in.buf.Delete()
		key = timefield.KeyDelete
	case tcell.KeyLeft:
		in.buf.SetCursor(in.buf.Cursor() - 1)
	case tcell.KeyRight:
		in.buf.SetCursor(in.buf.Cursor() + 1)
	case tcell.KeyHome, tcell.KeyCtrlA:
		in.buf.SetCursor(0)
	case tcell.KeyEnd, tcell.KeyCtrlE:
		in.buf.SetCursor(utf8.RuneCountInString(in.buf.Value()))
	case tcell.KeyRune:
		if r < 32 {
			return ActionNone
		}
		in.buf.Insert(string(r))
		key = timefield.KeyForRune(r)
	default:
		return ActionNone
	}

	in.field.KeyReleased(key)
	return ActionChanged
}

// Draw paints prompt, text and hint starting at x, y and places the cursor
func (in *Input) Draw(screen tcell.Screen, x, y int) {
	col := drawString(screen, x, y, in.Prompt, in.PromptStyle)
	textX := col

	text := in.field.Text()
	if text == "" {
		drawString(screen, col, y, in.Placeholder, in.PlaceholderStyle)
	} else {
		drawString(screen, col, y, text, in.Style)
	}

	if in.Hint != "" {
		drawString(screen, x, y+1, in.Hint, in.HintStyle)
	}
	screen.ShowCursor(textX+in.buf.Cursor(), y)
}

// drawString writes s rune by rune and returns the column after it
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// Run shows the input on screen until it is confirmed or cancelled. Enter
// only confirms once the hour is filled. ok is false on cancel or when the
// screen is finalized.
func (in *Input) Run(screen tcell.Screen) (clock timefield.Clock, ok bool) {
	for {
		screen.Clear()
		in.Draw(screen, 1, 1)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return clock, false
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch in.HandleKey(ev) {
			case ActionSubmit:
				if in.field.HourFilled() {
					return in.field.Time(), true
				}
			case ActionCancel:
				return clock, false
			}
		}
	}
}
