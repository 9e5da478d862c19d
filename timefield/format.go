// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package timefield

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	maxHour   = 23
	maxMinute = 59

	// segments longer than this are not parsed and count as 0
	maxParsedDigits = 9

	// noMinutes marks text without a ':' yet
	noMinutes = -1
)

// Canonicalize computes the text a field shows after key was released on
// text, given the state left by the previous keystroke. text must be
// non-empty; an empty field is never re-formatted.
func Canonicalize(text string, key Key, st State) string {
	deleting := key.IsDeletion()

	digitsColon := strings.Map(func(r rune) rune {
		if r == ':' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, text)

	rawHours, rawMinutes, hasMinutes := splitSegments(digitsColon)

	// Deleting the colon of "HH:" leaves one hour digit too many.
	if deleting && !hasMinutes && rawHours != "" && st.HasLastAccepted &&
		strings.Contains(st.LastAccepted, ":") &&
		len(st.LastAccepted)-len(rawHours) == 1 {
		rawHours = rawHours[:1]
	}

	hours := parseSegment(rawHours)
	minutes := noMinutes
	if hasMinutes {
		minutes = parseSegment(rawMinutes)
	}

	if digitsColon == "" || (deleting && hours == 0 && minutes == noMinutes) {
		return ""
	}

	hours = min(hours, maxHour)
	var b strings.Builder
	fmt.Fprintf(&b, "%02d", hours)

	if minutes >= 0 {
		b.WriteByte(':')
		if (rawMinutes != "" && !deleting) || (deleting && minutes > 0) {
			fmt.Fprintf(&b, "%02d", min(minutes, maxMinute))
		}
	} else if !deleting && (!(!st.WasZeroOneOrTwo && key.IsZeroOneOrTwo() && minutes < 0) || hours >= 10) {
		b.WriteByte(':')
	}

	return b.String()
}

// splitSegments splits s on ':' into the hour segment and the concatenation
// of everything after the first ':'.
func splitSegments(s string) (hours, minutes string, hasMinutes bool) {
	hours, rest, found := strings.Cut(s, ":")
	if !found {
		return hours, "", false
	}
	return hours, strings.ReplaceAll(rest, ":", ""), true
}

func parseSegment(s string) int {
	if s == "" || len(s) > maxParsedDigits {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
