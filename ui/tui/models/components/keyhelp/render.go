// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key help footer of the picker.
package keyhelp

import (
	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// help.Model's own views count disabled bindings when placing separators
// and measure the ellipsis wrongly, so the footer renders its own.

func enabled(b key.Binding) bool { return b.Enabled() }

// shortView renders the enabled bindings on one line.
func shortView(m help.Model, bindings []key.Binding) string {
	sep := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	var parts []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		part := m.Styles.ShortKey.Inline(true).Render(b.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(b.Help().Desc)
		if len(parts) > 0 {
			part = sep + part
		}
		parts = append(parts, part)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, parts)...)
}

// fullView renders one column per group that has an enabled binding.
func fullView(m help.Model, groups [][]key.Binding) string {
	sep := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		if !slices.ContainsFunc(group, enabled) {
			continue
		}
		var keys, descs []string
		for _, b := range group {
			if b.Enabled() {
				keys = append(keys, b.Help().Key)
				descs = append(descs, b.Help().Desc)
			}
		}
		col := lipgloss.JoinHorizontal(lipgloss.Top,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descs...)),
		)
		if len(cols) > 0 {
			col = lipgloss.JoinHorizontal(lipgloss.Top, sep, col)
		}
		cols = append(cols, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, cols)...)
}

// fit keeps the leading parts that fit into m.Width. When parts are cut an
// ellipsis takes their place, as long as it fits itself.
func fit(m help.Model, parts []string) []string {
	if m.Width <= 0 {
		return parts
	}
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailWidth := lipgloss.Width(tail)

	used := 0
	for i, part := range parts {
		w := lipgloss.Width(part)
		last := i == len(parts)-1
		if (last && used+w <= m.Width) || (!last && used+w+tailWidth <= m.Width) {
			used += w
			continue
		}
		out := append([]string(nil), parts[:i]...)
		if used+tailWidth <= m.Width {
			out = append(out, tail)
		}
		return out
	}
	return parts
}
