// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/timepicker/ui/tui/util"
)

type testKeyMap struct{ binding key.Binding }

func (k testKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.binding} }
func (k testKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.binding}} }

func TestModel_ShowsAnnouncedKeyMap(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Fatalf("expected empty view without a key map")
	}

	km := testKeyMap{binding: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "now"))}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m.Update(util.AnnounceKeyMapMsg{KeyMap: km})

	if !strings.Contains(m.View(), "ctrl+t") {
		t.Fatalf("short help misses binding: %q", m.View())
	}

	m.ToggleExpanded()
	if !m.Expanded {
		t.Fatalf("expected expanded help")
	}
	if !strings.Contains(m.View(), "now") {
		t.Fatalf("full help misses description: %q", m.View())
	}
}

func TestFit_CutsWithEllipsis(t *testing.T) {
	m := help.New()
	m.Ellipsis = "…"
	m.Width = 11

	got := fit(m, []string{"aaaa", "bbbb", "cccc"})
	if len(got) != 3 || got[0] != "aaaa" || got[1] != "bbbb" {
		t.Fatalf("unexpected parts %q", got)
	}
	if !strings.Contains(got[2], "…") {
		t.Fatalf("expected an ellipsis in place of the last part, got %q", got[2])
	}

	m.Width = 12
	if got := fit(m, []string{"aaaa", "bbbb", "cccc"}); len(got) != 3 || got[2] != "cccc" {
		t.Fatalf("last part fits exactly, got %q", got)
	}
}

func TestShortView_SkipsDisabled(t *testing.T) {
	m := help.New()
	m.Width = 80
	on := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "alpha"))
	off := key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "beta"), key.WithDisabled())

	view := shortView(m, []key.Binding{off, on})
	if strings.Contains(view, "beta") || !strings.Contains(view, "alpha") {
		t.Fatalf("unexpected view %q", view)
	}
	if strings.HasPrefix(view, m.ShortSeparator) {
		t.Fatalf("separator before first enabled binding: %q", view)
	}
}
