// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/timepicker/i18n"
	"github.com/toeirei/timepicker/internal/logging"
	"github.com/toeirei/timepicker/timefield"
)

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format KEY...",
		Short: i18n.T("cli.format_short"),
		Long: i18n.T("cli.format_short") + `.

Every KEY is a single character or one of backspace, bs, ctrl+h, delete,
del, ctrl+d, space, kp0-kp9. Longer words are typed character by
character, so "1230 backspace" is five keys. One line is printed per key:
the key, the text after the field reformatted it and the caret position,
separated by tabs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return replay(cmd.OutOrStdout(), expandKeys(args))
		},
	}
}

// stroke is one key press: its name and the text it types.
type stroke struct {
	name string
	text string
}

var namedKeys = map[string]stroke{
	"backspace": {"backspace", ""},
	"bs":        {"backspace", ""},
	"ctrl+h":    {"backspace", ""},
	"delete":    {"delete", ""},
	"del":       {"delete", ""},
	"ctrl+d":    {"delete", ""},
	"space":     {"space", " "},
}

// expandKeys turns command line words into strokes.
func expandKeys(args []string) []stroke {
	var out []stroke
	for _, arg := range args {
		lower := strings.ToLower(arg)
		if s, ok := namedKeys[lower]; ok {
			out = append(out, s)
			continue
		}
		if d, ok := keypadDigit(lower); ok {
			out = append(out, stroke{name: lower, text: d})
			continue
		}
		for _, r := range arg {
			out = append(out, stroke{name: string(r), text: string(r)})
		}
	}
	return out
}

func keypadDigit(name string) (string, bool) {
	for _, prefix := range []string{"kp", "numpad", "digit"} {
		rest, found := strings.CutPrefix(name, prefix)
		if found && len(rest) == 1 && rest[0] >= '0' && rest[0] <= '9' {
			return rest, true
		}
	}
	return "", false
}

// replay feeds strokes through a fresh field the way a host toolkit would
// and prints every intermediate state.
func replay(w io.Writer, strokes []stroke) error {
	buf := timefield.NewStringBuffer("")
	field := timefield.New(buf)
	logging.Debugf("replaying %d keys", len(strokes))

	for _, s := range strokes {
		key := timefield.ParseKey(s.name)
		buf.Apply(key, s.text)
		field.KeyReleased(key)

		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", s.name, field.Text(), buf.Cursor()); err != nil {
			return err
		}
	}
	return nil
}

func clockText(c *timefield.Clock) string {
	if c == nil {
		return "--:--"
	}
	return c.String()
}
