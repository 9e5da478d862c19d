// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package timefield

import (
	"strconv"
	"strings"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/toeirei/timepicker/internal/logging"
)

// Field keeps the text of a TextBuffer in "HH:MM" form. A Field is not safe
// for concurrent use; it is driven from the host's event loop.
type Field struct {
	buf      TextBuffer
	state    State
	onChange func(text string)
	logger   *log.Logger
}

type Option func(*Field)

// WithOnChange registers fn to be called with the new text every time the
// field rewrites its buffer.
func WithOnChange(fn func(text string)) Option {
	return func(f *Field) {
		f.onChange = fn
	}
}

// WithLogger replaces the package logger used for rewrite traces.
func WithLogger(l *log.Logger) Option {
	return func(f *Field) {
		f.logger = l
	}
}

func New(buf TextBuffer, opts ...Option) *Field {
	f := &Field{
		buf:    buf,
		logger: logging.L,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// KeyReleased re-formats the buffer after the host applied key to it. It
// reports whether the buffer was rewritten.
func (f *Field) KeyReleased(key Key) bool {
	text := f.buf.Value()
	if text == "" {
		f.state = f.state.cleared(key)
		return false
	}

	formatted := Canonicalize(text, key, f.state)
	changed := formatted != text
	if changed {
		f.buf.SetValue(formatted)
		f.buf.SetCursor(len(formatted))
		f.state = f.state.accepted(formatted)
		if f.logger != nil {
			f.logger.Debug("time field rewritten", "key", key, "from", text, "to", formatted)
		}
	}

	f.state = f.state.released(key)

	if changed && f.onChange != nil {
		f.onChange(formatted)
	}
	return changed
}

// Text returns the text currently shown.
func (f *Field) Text() string { return f.buf.Value() }

// State returns the carried keystroke state.
func (f *Field) State() State { return f.state }

// Hour returns the hour shown, or 0 if there is none.
func (f *Field) Hour() int {
	hours, _, _ := strings.Cut(f.buf.Value(), ":")
	return parseAccessor(hours, maxHour)
}

// Minute returns the minute shown, or 0 if there is none.
func (f *Field) Minute() int {
	_, rest, found := strings.Cut(f.buf.Value(), ":")
	if !found {
		return 0
	}
	minutes, _, _ := strings.Cut(rest, ":")
	return parseAccessor(minutes, maxMinute)
}

// Time returns the time shown. Missing parts are 0.
func (f *Field) Time() Clock {
	return Clock{Hour: f.Hour(), Minute: f.Minute()}
}

// TimeAt returns the time shown on date's calendar day.
func (f *Field) TimeAt(date time.Time) time.Time {
	return f.Time().At(date)
}

// SetTime writes c as "HH:MM", clamped into range. The keystroke state is
// left alone and picks the new text up on the next key.
func (f *Field) SetTime(c Clock) {
	f.buf.SetValue(c.Clamped().String())
}

// Clear empties the field.
func (f *Field) Clear() {
	f.buf.SetValue("")
}

// HourFilled reports whether anything was entered.
func (f *Field) HourFilled() bool {
	return f.buf.Value() != ""
}

// MinuteFilled reports whether the minute part has been reached, i.e. the
// text holds a ':'.
func (f *Field) MinuteFilled() bool {
	text := f.buf.Value()
	return text != "" && strings.Contains(text, ":")
}

// TimeFilled is MinuteFilled.
func (f *Field) TimeFilled() bool {
	return f.MinuteFilled()
}

func parseAccessor(s string, limit int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > limit {
		return 0
	}
	return n
}
