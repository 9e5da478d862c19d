// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import tea "github.com/charmbracelet/bubbletea"

// Size tracks the last window size a model was told about.
type Size struct {
	Width  int
	Height int
}

// Update records msg if it is a tea.WindowSizeMsg and reports whether it was.
func (s *Size) Update(msg tea.Msg) bool {
	size, ok := msg.(tea.WindowSizeMsg)
	if ok {
		s.Width, s.Height = size.Width, size.Height
	}
	return ok
}

// WidthUpTo returns the known width, capped at limit. Before the first
// size message it is limit.
func (s Size) WidthUpTo(limit int) int {
	if s.Width <= 0 {
		return limit
	}
	return Clamp(0, s.Width, limit)
}
