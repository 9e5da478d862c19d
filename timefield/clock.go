// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package timefield

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// ClockOf returns the time of day of t in t's location.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseClock parses "H:MM" or "HH:MM".
func ParseClock(s string) (Clock, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Clock{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > maxHour {
		return Clock{}, fmt.Errorf("invalid hour in %q", s)
	}
	if len(m) != 2 {
		return Clock{}, fmt.Errorf("invalid minute in %q", s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > maxMinute {
		return Clock{}, fmt.Errorf("invalid minute in %q", s)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// Clamped limits the hour to 0-23 and the minute to 0-59.
func (c Clock) Clamped() Clock {
	return Clock{
		Hour:   min(max(c.Hour, 0), maxHour),
		Minute: min(max(c.Minute, 0), maxMinute),
	}
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// At returns date's calendar day, in date's location, at c.
func (c Clock) At(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, date.Location())
}
