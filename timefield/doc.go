// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package timefield implements an "HH:MM" time entry field that re-formats
// its own text after every keystroke.
//
// The field does not own any UI. It works on an injected TextBuffer (a
// bubbles textinput, a tcell-backed buffer or a plain StringBuffer) and is
// driven by the host calling KeyReleased after the host has applied the raw
// keystroke to that buffer:
//
//	buf := &timefield.StringBuffer{}
//	f := timefield.New(buf)
//	buf.Insert("9")
//	f.KeyReleased(timefield.KeyOther) // buf.Value() == "09:"
//
// Hours are clamped to 00-23 and minutes to 00-59. Nothing in this package
// returns an error; malformed text degrades to 0.
package timefield
