// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for Timepicker using the
// Cobra library. It defines the root command, its flags and subcommands and
// the main entry point for execution.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/timepicker/buildvars"
	"github.com/toeirei/timepicker/config"
	"github.com/toeirei/timepicker/i18n"
	"github.com/toeirei/timepicker/internal/logging"
	"github.com/toeirei/timepicker/ui/tui"
	"golang.org/x/term"
)

var version = buildvars.VersionOrDefault("dev") // buildvars.Version is set by the linker
var gitCommit = "dev"                            // set at build time with the short commit SHA
var buildDate = ""                               // set at build time (RFC3339)
var cfgFile string

var appConfig config.Config

// isTerminal reports whether stdin is a terminal. Tests replace it.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// runPicker starts the interactive picker. Tests replace it.
var runPicker = tui.Run

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	var fileUsed string
	appConfig, fileUsed, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// First run: persist the defaults so users have a file to edit.
	if fileUsed == "" {
		defaults := config.DefaultConfig()
		if err := config.WriteConfigFile(&defaults, false); err != nil {
			logging.Warnf("could not write default config: %v", err)
		} else {
			logging.Debugf("wrote default config")
		}
	}

	if _, ok := i18n.GetAvailableLocales()[appConfig.Language]; !ok {
		logging.Warnf("unsupported language %q, falling back to en", appConfig.Language)
		appConfig.Language = "en"
	}
	i18n.SetLang(appConfig.Language)
	logging.SetDebug(appConfig.Verbose)
	logging.Debugf("config loaded: file=%q language=%s placeholder=%q", fileUsed, i18n.GetLang(), appConfig.Placeholder)

	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "timepicker",
		Short:             i18n.T("cli.short"),
		Long:              i18n.T("cli.long"),
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE:              runRoot,
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("log-file", "", "Write logs to this file while the picker is shown")
	cmd.PersistentFlags().String("placeholder", "HH:MM", "Placeholder of empty time fields")
	cmd.PersistentFlags().String("start", "", "Prefill the start time (HH:MM)")
	cmd.PersistentFlags().String("end", "", "Prefill the end time (HH:MM)")
	cmd.PersistentFlags().String("date", "", "Prefill the date (defaults to today)")

	cmd.AddCommand(
		newFormatCmd(),
		newTcellCmd(),
		newVersionCmd(),
	)

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return errors.New(i18n.T("cli.not_a_terminal"))
	}

	// The picker owns the terminal, so logs go to a file or nowhere.
	closeLog, err := redirectLogs(appConfig.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	result, ok, err := runPicker(tui.Options{
		Date:        appConfig.Date,
		Start:       appConfig.Start,
		End:         appConfig.End,
		Placeholder: appConfig.Placeholder,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintln(out, i18n.T("result.cancelled"))
		return nil
	}
	fmt.Fprintln(out, i18n.T("result.range", result.Date, clockText(result.Start), clockText(result.End)))
	return nil
}

func redirectLogs(path string) (func(), error) {
	if path == "" {
		logging.SetOutput(io.Discard)
		return func() { logging.SetOutput(os.Stderr) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	logging.SetOutput(f)
	return func() {
		logging.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("cli.version_short"),
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/timepicker" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, show the commit provided via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
