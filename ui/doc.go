// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the front ends of Timepicker: the Cobra CLI in `cli`,
// the bubbletea picker in `tui` and the plain tcell prompt in `tcellinput`.
package ui
