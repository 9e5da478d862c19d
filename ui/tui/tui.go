// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jinzhu/now"
	"github.com/toeirei/timepicker/timefield"
	"github.com/toeirei/timepicker/ui/tui/models/views/root"
)

// DateLayout is the format of the date field.
const DateLayout = "2006-01-02"

// Options prefill the picker. Empty strings leave a field empty, except
// Date which falls back to today.
type Options struct {
	Date        string
	Start       string
	End         string
	Placeholder string
}

// Initial turns opts into the values the form starts with. Dates are parsed
// relative to today, so any layout jinzhu/now understands is accepted.
func Initial(opts Options, today time.Time) (root.Result, error) {
	var r root.Result

	base := now.New(today)
	if opts.Date == "" {
		r.Date = base.BeginningOfDay().Format(DateLayout)
	} else {
		d, err := base.Parse(opts.Date)
		if err != nil {
			return r, fmt.Errorf("invalid date %q: %w", opts.Date, err)
		}
		r.Date = d.Format(DateLayout)
	}

	for _, f := range []struct {
		name string
		in   string
		out  **timefield.Clock
	}{
		{"start", opts.Start, &r.Start},
		{"end", opts.End, &r.End},
	} {
		if f.in == "" {
			continue
		}
		c, err := timefield.ParseClock(f.in)
		if err != nil {
			return r, fmt.Errorf("invalid %s time: %w", f.name, err)
		}
		*f.out = &c
	}
	return r, nil
}

// Run shows the picker until it is submitted or left. ok reports whether
// the form was submitted.
func Run(opts Options) (result root.Result, ok bool, err error) {
	initial, err := Initial(opts, time.Now())
	if err != nil {
		return result, false, err
	}

	final, err := tea.NewProgram(
		root.New(initial, opts.Placeholder),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return result, false, fmt.Errorf("picker failed: %w", err)
	}

	m, isRoot := final.(*root.Model)
	if !isRoot {
		return result, false, fmt.Errorf("unexpected final model %T", final)
	}
	result, ok = m.Result()
	return result, ok, nil
}
