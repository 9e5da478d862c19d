// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import "testing"

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present, got %v", k, av)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("form.start"); got != "Start" {
		t.Fatalf("expected 'Start', got %q", got)
	}

	got := T("result.range", "2026-10-16", "09:00", "17:30")
	if got != "2026-10-16 09:00 - 17:30" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	defer SetLang("en")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("form.start"); got != "Beginn" {
		t.Fatalf("expected German 'Beginn', got %q", got)
	}
}

func TestT_UnknownIDFallsBack(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected message ID back, got %q", got)
	}
}
