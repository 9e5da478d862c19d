// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the translated strings shown by the picker. It
// loads the embedded YAML locales with go-i18n.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
)

// Init loads all embedded locales and selects lang.
func Init(l string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	lang = l
	localizer = i18n.NewLocalizer(bundle, l)
}

// SetLang changes the active language.
func SetLang(l string) {
	Init(l)
}

// GetLang returns the active language.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return lang
}

// GetAvailableLocales maps every embedded locale tag to its name in that
// language.
func GetAvailableLocales() map[string]string {
	if bundle == nil {
		Init("en")
	}
	out := make(map[string]string)
	for _, tag := range bundle.LanguageTags() {
		out[tag.String()] = display.Self.Name(tag)
	}
	return out
}

// T translates messageID. A single map[string]any argument is passed to the
// message template; other arguments are applied fmt-style. Unknown IDs are
// returned as they are.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
