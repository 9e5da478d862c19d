// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package timefield

// State is what a Field carries from one keystroke to the next.
type State struct {
	// WasZeroOneOrTwo is true when the previous key typed a 0, 1 or 2.
	WasZeroOneOrTwo bool
	// LastAccepted is the last text the field wrote into its buffer. It is
	// only meaningful when HasLastAccepted is set.
	LastAccepted    string
	HasLastAccepted bool
}

// cleared is the transition taken when the buffer became empty.
func (s State) cleared(key Key) State {
	return State{WasZeroOneOrTwo: key.IsZeroOneOrTwo()}
}

// accepted records text the field wrote into its buffer.
func (s State) accepted(text string) State {
	s.LastAccepted, s.HasLastAccepted = text, true
	return s
}

// released closes every keystroke pass.
func (s State) released(key Key) State {
	s.WasZeroOneOrTwo = key.IsZeroOneOrTwo()
	return s
}
