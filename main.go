// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Timepicker.
//
// Usage:
//
//	go run . [flags]
//	./timepicker [flags]
//	./timepicker format 1230 backspace
//
// This launches the Timepicker CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/timepicker/internal/logging"
	"github.com/toeirei/timepicker/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("timepicker: %v", err)
		os.Exit(1)
	}
}
