// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package form

const (
	ActionNone = iota
	ActionNext
	ActionPrev
	ActionSubmit
	ActionCancel
)

type Action int
