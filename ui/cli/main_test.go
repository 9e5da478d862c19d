// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/toeirei/timepicker/config"
	"github.com/toeirei/timepicker/i18n"
	"github.com/toeirei/timepicker/timefield"
	"github.com/toeirei/timepicker/ui/tui"
	"github.com/toeirei/timepicker/ui/tui/models/views/root"
)

// isolate keeps config discovery away from the developer's real files.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Chdir(dir)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func stubPicker(t *testing.T, terminal bool, fn func(tui.Options) (root.Result, bool, error)) {
	t.Helper()
	origTerm, origRun := isTerminal, runPicker
	t.Cleanup(func() { isTerminal, runPicker = origTerm, origRun })
	isTerminal = func() bool { return terminal }
	runPicker = fn
}

func TestFormatCmd(t *testing.T) {
	isolate(t)

	out, err := execute(t, "format", "1230", "backspace")
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}

	want := strings.Join([]string{
		"1\t01\t2",
		"2\t12:\t3",
		"3\t12:03\t5",
		"0\t12:30\t5",
		"backspace\t12:03\t5",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output (-want +got):\n%s", diff)
	}
}

func TestFormatCmd_RequiresKeys(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "format"); err == nil {
		t.Fatalf("expected an error without keys")
	}
}

func TestExpandKeys(t *testing.T) {
	got := expandKeys([]string{"12", "BS", "kp7", "del", "space", "x"})
	want := []stroke{
		{"1", "1"},
		{"2", "2"},
		{"backspace", ""},
		{"kp7", "7"},
		{"delete", ""},
		{"space", " "},
		{"x", "x"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(stroke{})); diff != "" {
		t.Fatalf("expandKeys (-want +got):\n%s", diff)
	}
}

func TestReplay_DeleteAtEndDoesNothing(t *testing.T) {
	var out bytes.Buffer
	if err := replay(&out, expandKeys([]string{"09", "delete"})); err != nil {
		t.Fatalf("replay: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if last := lines[len(lines)-1]; last != "delete\t09:\t3" {
		t.Fatalf("unexpected last line %q", last)
	}
}

func TestRootCmd_NotATerminal(t *testing.T) {
	isolate(t)
	stubPicker(t, false, func(tui.Options) (root.Result, bool, error) {
		t.Fatalf("picker must not run without a terminal")
		return root.Result{}, false, nil
	})

	if _, err := execute(t); err == nil {
		t.Fatalf("expected an error when stdin is not a terminal")
	}
}

func TestRootCmd_PrintsResult(t *testing.T) {
	isolate(t)

	var got tui.Options
	stubPicker(t, true, func(opts tui.Options) (root.Result, bool, error) {
		got = opts
		return root.Result{
			Date:  "2026-10-16",
			Start: &timefield.Clock{Hour: 9},
			End:   &timefield.Clock{Hour: 17, Minute: 30},
		}, true, nil
	})

	out, err := execute(t, "--start", "09:00", "--date", "2026-10-16")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "2026-10-16 09:00 - 17:30\n" {
		t.Fatalf("unexpected output %q", out)
	}

	want := tui.Options{Date: "2026-10-16", Start: "09:00", Placeholder: "HH:MM"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options (-want +got):\n%s", diff)
	}
}

func TestRootCmd_Cancelled(t *testing.T) {
	isolate(t)
	stubPicker(t, true, func(tui.Options) (root.Result, bool, error) {
		return root.Result{}, false, nil
	})

	out, err := execute(t)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "cancelled\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRootCmd_ConfigFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TIMEPICKER_END", "18:45")

	var got tui.Options
	stubPicker(t, true, func(opts tui.Options) (root.Result, bool, error) {
		got = opts
		return root.Result{}, false, nil
	})

	if _, err := execute(t); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.End != "18:45" {
		t.Fatalf("expected end from environment, got %q", got.End)
	}
}

func TestRootCmd_WritesDefaultConfigOnFirstRun(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { i18n.SetLang("en") })
	path, err := config.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath: %v", err)
	}

	if _, err := execute(t, "format", "1"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected default config at %s: %v", path, err)
	}
	if !strings.Contains(string(data), "placeholder:") || !strings.Contains(string(data), "HH:MM") {
		t.Fatalf("unexpected default config:\n%s", data)
	}

	// An existing file is left alone.
	if err := os.WriteFile(path, []byte("language: de\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := execute(t, "format", "1"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "language: de\n" {
		t.Fatalf("existing config was overwritten:\n%s", data)
	}
	if appConfig.Language != "de" || i18n.GetLang() != "de" {
		t.Fatalf("expected language de from file, got %q / %q", appConfig.Language, i18n.GetLang())
	}
}

func TestRootCmd_UnknownLanguageFallsBack(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { i18n.SetLang("en") })

	if _, err := execute(t, "--language", "xx", "format", "1"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if appConfig.Language != "en" || i18n.GetLang() != "en" {
		t.Fatalf("expected fallback to en, got %q / %q", appConfig.Language, i18n.GetLang())
	}

	if _, err := execute(t, "--language", "de", "format", "1"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if i18n.GetLang() != "de" {
		t.Fatalf("expected de to be accepted, got %q", i18n.GetLang())
	}
}

func TestRedirectLogs_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picker.log")
	closeLog, err := redirectLogs(path)
	if err != nil {
		t.Fatalf("redirectLogs: %v", err)
	}
	closeLog()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestGetConfigPathFromCli_FlagNotSet(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")

	p, err := getConfigPathFromCli(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil path when flag not set, got %v", *p)
	}
}

func TestGetConfigPathFromCli_WithValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timepicker.yaml")
	if err := os.WriteFile(path, []byte("language: de\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")
	if err := cmd.Flags().Set("config", path); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	p, err := getConfigPathFromCli(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil || *p != path {
		t.Fatalf("expected %s, got %v", path, p)
	}
}

func TestGetConfigPathFromCli_MissingFile(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")
	_ = cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := getConfigPathFromCli(cmd); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

func TestResolveBuildVersion_WithBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/timepicker", Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2025-01-01T00:00:00Z"},
		},
	}

	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected version v1.2.3, got %s", v)
	}
	if c != "deadbeef" {
		t.Fatalf("expected commit deadbeef, got %s", c)
	}
	if d != "2025-01-01T00:00:00Z" {
		t.Fatalf("expected date set, got %s", d)
	}
}

func TestResolveBuildVersion_DependencyFallback(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/timepicker", Version: "(devel)"},
		Deps: []*debug.Module{
			{Path: "github.com/toeirei/timepicker", Version: "v0.3.1-0.20261016131337-d1692e4643ee"},
		},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "v0.3.1-0.20261016131337-d1692e4643ee" {
		t.Fatalf("expected dependency version fallback got %s", v)
	}
}

func TestResolveBuildVersion_GitCommitFallback(t *testing.T) {
	orig := gitCommit
	defer func() { gitCommit = orig }()
	gitCommit = "deadbeef"

	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/timepicker", Version: "(devel)"},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "deadbeef" {
		t.Fatalf("expected gitCommit fallback got %s", v)
	}
}

func TestCompositeVersion(t *testing.T) {
	if got := compositeVersion("v1", "dev", ""); got != "v1" {
		t.Fatalf("got %q", got)
	}
	if got := compositeVersion("v1", "abc", "2026-01-01"); got != "v1 (abc) built: 2026-01-01" {
		t.Fatalf("got %q", got)
	}
}
