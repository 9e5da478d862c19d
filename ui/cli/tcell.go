// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/toeirei/timepicker/config"
	"github.com/toeirei/timepicker/i18n"
	"github.com/toeirei/timepicker/timefield"
	"github.com/toeirei/timepicker/ui/tcellinput"
)

func newTcellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tcell",
		Short: i18n.T("cli.tcell_short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errors.New(i18n.T("cli.not_a_terminal"))
			}

			closeLog, err := redirectLogs(appConfig.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()

			clock, ok, err := promptTcell(appConfig)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("result.cancelled"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), clock.String())
			return nil
		},
	}
}

func promptTcell(cfg config.Config) (timefield.Clock, bool, error) {
	in := tcellinput.New()
	in.Prompt = i18n.T("tcell.prompt")
	in.Hint = i18n.T("tcell.hint")
	if cfg.Placeholder != "" {
		in.Placeholder = cfg.Placeholder
	}
	if cfg.Start != "" {
		c, err := timefield.ParseClock(cfg.Start)
		if err != nil {
			return timefield.Clock{}, false, errors.New(i18n.T("cli.invalid_time", "start", err))
		}
		in.Field().SetTime(c)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return timefield.Clock{}, false, fmt.Errorf("could not create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return timefield.Clock{}, false, fmt.Errorf("could not init screen: %w", err)
	}
	defer screen.Fini()

	clock, ok := in.Run(screen)
	return clock, ok, nil
}
