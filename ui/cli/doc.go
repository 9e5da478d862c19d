// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Timepicker using
// Cobra. It wires configuration, logging and i18n and hands off to the
// interactive picker, the tcell prompt or the headless key replay.
package cli
