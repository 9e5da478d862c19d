// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package timefield

import "strings"

// Key is the identity of a released key, reduced to what the formatter
// needs to know about it.
type Key uint8

const (
	KeyOther Key = iota
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyBackspace
	KeyDelete
)

// IsZeroOneOrTwo reports whether the key typed a 0, 1 or 2, i.e. a digit
// that may still be followed by a second hour digit.
func (k Key) IsZeroOneOrTwo() bool {
	return k == KeyDigit0 || k == KeyDigit1 || k == KeyDigit2
}

// IsDeletion reports whether the key removes text.
func (k Key) IsDeletion() bool {
	return k == KeyBackspace || k == KeyDelete
}

func (k Key) String() string {
	switch k {
	case KeyDigit0:
		return "0"
	case KeyDigit1:
		return "1"
	case KeyDigit2:
		return "2"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	default:
		return "other"
	}
}

// ParseKey maps a key name as produced by bubbletea (tea.KeyMsg.String) or
// typed on the command line to a Key. Unknown names are KeyOther.
func ParseKey(name string) Key {
	switch strings.ToLower(name) {
	case "0", "kp0", "digit0", "numpad0":
		return KeyDigit0
	case "1", "kp1", "digit1", "numpad1":
		return KeyDigit1
	case "2", "kp2", "digit2", "numpad2":
		return KeyDigit2
	case "backspace", "ctrl+h", "bs":
		return KeyBackspace
	case "delete", "ctrl+d", "del":
		return KeyDelete
	}
	return KeyOther
}

// KeyForRune classifies a typed character.
func KeyForRune(r rune) Key {
	switch r {
	case '0':
		return KeyDigit0
	case '1':
		return KeyDigit1
	case '2':
		return KeyDigit2
	}
	return KeyOther
}
