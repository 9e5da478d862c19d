// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package timefield

// TextBuffer is the text-editing capability a host toolkit lends to a
// Field. *textinput.Model from charmbracelet/bubbles satisfies it as is.
type TextBuffer interface {
	Value() string
	SetValue(string)
	SetCursor(int)
}

// StringBuffer is an in-memory TextBuffer with a caret. It can also play
// the host's part and apply raw edits before KeyReleased is called.
type StringBuffer struct {
	text   []rune
	cursor int
}

// NewStringBuffer returns a buffer holding text with the caret at its end.
func NewStringBuffer(text string) *StringBuffer {
	b := &StringBuffer{}
	b.SetValue(text)
	return b
}

func (b *StringBuffer) Value() string { return string(b.text) }

// SetValue replaces the text and moves the caret to its end.
func (b *StringBuffer) SetValue(s string) {
	b.text = []rune(s)
	b.cursor = len(b.text)
}

// SetCursor moves the caret, clamped to the text.
func (b *StringBuffer) SetCursor(pos int) {
	b.cursor = min(max(pos, 0), len(b.text))
}

func (b *StringBuffer) Cursor() int { return b.cursor }

// Insert types s at the caret.
func (b *StringBuffer) Insert(s string) {
	r := []rune(s)
	text := make([]rune, 0, len(b.text)+len(r))
	text = append(text, b.text[:b.cursor]...)
	text = append(text, r...)
	text = append(text, b.text[b.cursor:]...)
	b.text = text
	b.cursor += len(r)
}

// Backspace removes the character before the caret.
func (b *StringBuffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
}

// Delete removes the character under the caret.
func (b *StringBuffer) Delete() {
	if b.cursor >= len(b.text) {
		return
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
}

// Apply performs the raw edit a toolkit would make for key. text is what
// the key typed and is only used for non-deletion keys.
func (b *StringBuffer) Apply(key Key, text string) {
	switch key {
	case KeyBackspace:
		b.Backspace()
	case KeyDelete:
		b.Delete()
	default:
		b.Insert(text)
	}
}

var _ TextBuffer = (*StringBuffer)(nil)
