// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the interactive picker. Presentation and input handling
// live here; the formatting rules are provided by `timefield`.
package tui
