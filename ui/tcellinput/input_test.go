// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package tcellinput

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/toeirei/timepicker/timefield"
)

func typeRunes(in *Input, s string) {
	for _, r := range s {
		in.handle(tcell.KeyRune, r)
	}
}

func TestHandle_Typing(t *testing.T) {
	in := New()

	steps := []struct {
		r    rune
		want string
	}{
		{'1', "01"},
		{'9', "19:"},
		{'4', "19:04"},
		{'5', "19:45"},
	}
	for _, s := range steps {
		if got := in.handle(tcell.KeyRune, s.r); got != ActionChanged {
			t.Fatalf("typing %q: expected ActionChanged, got %v", s.r, got)
		}
		if got := in.Field().Text(); got != s.want {
			t.Fatalf("after %q: expected %q, got %q", s.r, s.want, got)
		}
	}
	if in.Cursor() != 5 {
		t.Fatalf("expected cursor at 5, got %d", in.Cursor())
	}
}

func TestHandle_Backspace(t *testing.T) {
	in := New()
	typeRunes(in, "1230")
	if got := in.Field().Text(); got != "12:30" {
		t.Fatalf("setup: got %q", got)
	}

	want := []string{"12:03", "12:", "01", ""}
	for i, w := range want {
		in.handle(tcell.KeyBackspace2, 0)
		if got := in.Field().Text(); got != w {
			t.Fatalf("backspace %d: expected %q, got %q", i+1, w, got)
		}
	}
}

func TestHandle_CursorKeys(t *testing.T) {
	in := New()
	typeRunes(in, "12")

	in.handle(tcell.KeyHome, 0)
	if in.Cursor() != 0 {
		t.Fatalf("home: cursor %d", in.Cursor())
	}
	in.handle(tcell.KeyRight, 0)
	if in.Cursor() != 1 {
		t.Fatalf("right: cursor %d", in.Cursor())
	}
	in.handle(tcell.KeyLeft, 0)
	in.handle(tcell.KeyLeft, 0)
	if in.Cursor() != 0 {
		t.Fatalf("left is clamped at 0, got %d", in.Cursor())
	}
	in.handle(tcell.KeyEnd, 0)
	if in.Cursor() != 3 {
		t.Fatalf("end: cursor %d", in.Cursor())
	}
	if got := in.Field().Text(); got != "12:" {
		t.Fatalf("moving must not change %q", got)
	}
}

func TestHandle_Actions(t *testing.T) {
	in := New()
	tests := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyEnter, 0, ActionSubmit},
		{tcell.KeyEscape, 0, ActionCancel},
		{tcell.KeyCtrlC, 0, ActionCancel},
		{tcell.KeyTab, 0, ActionNone},
		{tcell.KeyRune, 7, ActionNone},
	}
	for _, tt := range tests {
		if got := in.handle(tt.key, tt.r); got != tt.want {
			t.Errorf("key %v: expected %v, got %v", tt.key, tt.want, got)
		}
	}
}

func TestHandle_OnChange(t *testing.T) {
	var seen []string
	in := New(timefield.WithOnChange(func(text string) { seen = append(seen, text) }))
	typeRunes(in, "7")
	if len(seen) != 1 || seen[0] != "07:" {
		t.Fatalf("unexpected changes %v", seen)
	}
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.Init()
	defer screen.Fini()
	screen.SetSize(40, 5)

	in := New()
	in.Prompt = "> "
	in.Hint = "enter"
	typeRunes(in, "0930")

	in.Draw(screen, 1, 1)

	want := "> 09:30"
	for i, w := range want {
		r, _, _, _ := screen.GetContent(1+i, 1)
		if r != w {
			t.Fatalf("column %d: expected %q, got %q", 1+i, w, r)
		}
	}
	if r, _, _, _ := screen.GetContent(1, 2); r != 'e' {
		t.Fatalf("hint not drawn, got %q", r)
	}
}

func TestDraw_Placeholder(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.Init()
	defer screen.Fini()
	screen.SetSize(40, 5)

	in := New()
	in.Draw(screen, 0, 0)

	for i, w := range "HH:MM" {
		r, _, _, _ := screen.GetContent(i, 0)
		if r != w {
			t.Fatalf("column %d: expected %q, got %q", i, w, r)
		}
	}
}
