// Copyright (c) 2026 Keymaster Team
// Timepicker - HH:MM time entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RuntimeOS is runtime.GOOS, exposed so tests can pick platform cases.
var RuntimeOS = runtime.GOOS

// Config is the persisted configuration of the picker.
type Config struct {
	Language string `mapstructure:"language" yaml:"language"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose"`
	// LogFile receives log output while the interactive UI owns the
	// terminal. Empty discards it.
	LogFile     string `mapstructure:"log-file" yaml:"log-file"`
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`
	// Start and End prefill the time fields ("HH:MM").
	Start string `mapstructure:"start" yaml:"start"`
	End   string `mapstructure:"end" yaml:"end"`
	// Date prefills the date field. Empty means today.
	Date string `mapstructure:"date" yaml:"date"`
}

// Defaults are the values used when neither file, env nor flags set a key.
// Every key is listed so viper consults the environment for it on Unmarshal.
func Defaults() map[string]any {
	return map[string]any{
		"language":    "en",
		"verbose":     false,
		"log-file":    "",
		"placeholder": "HH:MM",
		"start":       "",
		"end":         "",
		"date":        "",
	}
}

// DefaultConfig is Defaults as a Config. It is what gets written on first run.
func DefaultConfig() Config {
	return Config{
		Language:    "en",
		Placeholder: "HH:MM",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch RuntimeOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Timepicker")
		default:
			configDir = "/etc/timepicker"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "timepicker")
	}

	return filepath.Join(configDir, "timepicker.yaml"), nil
}

// LoadConfig layers defaults, the first config file found, a legacy
// `.timepicker.yaml` in the working directory, TIMEPICKER_* environment
// variables and the command's flags, in that order of precedence, and
// decodes the result into T. fileUsed is the config file that was read, or
// empty when none was found.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (c T, fileUsed string, err error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("timepicker")
	v.SetConfigType("yaml")

	// An explicit --config path wins over the search paths.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, anything else is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, "", err
		}
	} else {
		fileUsed = v.ConfigFileUsed()
	}

	mergeLegacyConfig(v)

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("timepicker")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, fileUsed, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fileUsed, err
	}

	return c, fileUsed, nil
}

// mergeLegacyConfig merges a `.timepicker.yaml` from the working directory
// if one exists. Errors are ignored so a broken legacy file never blocks
// startup.
func mergeLegacyConfig(v *viper.Viper) {
	legacyConfigFile := ".timepicker.yaml"
	if _, err := os.Stat(legacyConfigFile); err == nil {
		v.SetConfigFile(legacyConfigFile)
		_ = v.MergeInConfig()
		v.SetConfigFile("")
	}
}

// WriteConfigFile writes c as YAML to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
