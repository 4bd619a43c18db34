// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads dashui settings from defaults, YAML files,
// DASHUI_* environment variables and command-line flags, in increasing
// order of precedence.
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

// Config is the full set of persisted settings.
type Config struct {
	Language string      `mapstructure:"language" yaml:"language"`
	Theme    string      `mapstructure:"theme" yaml:"theme"`
	Debug    bool        `mapstructure:"debug" yaml:"debug"`
	LogFile  string      `mapstructure:"log_file" yaml:"log_file"`
	Table    TableConfig `mapstructure:"table" yaml:"table"`
	Source   Source      `mapstructure:"source" yaml:"source"`
}

// TableConfig holds data table defaults.
type TableConfig struct {
	Selectable  bool `mapstructure:"selectable" yaml:"selectable"`
	MultiSelect bool `mapstructure:"multi_select" yaml:"multi_select"`
	PageSize    int  `mapstructure:"page_size" yaml:"page_size"`
}

// Source describes where `dashui table` reads its records from.
type Source struct {
	Driver string `mapstructure:"driver" yaml:"driver"`
	DSN    string `mapstructure:"dsn" yaml:"dsn"`
	Query  string `mapstructure:"query" yaml:"query"`
	File   string `mapstructure:"file" yaml:"file"`
}

// Defaults returns the baseline values used when nothing else is configured.
func Defaults() map[string]any {
	return map[string]any{
		"language":           "en",
		"theme":              "light",
		"debug":              false,
		"log_file":           "",
		"table.selectable":   true,
		"table.multi_select": true,
		"table.page_size":    10,
		"source.driver":      "",
		"source.dsn":         "",
		"source.query":       "",
		"source.file":        "",
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "dashui")
		default:
			configDir = "/etc/dashui"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "dashui")
	}

	return filepath.Join(configDir, "dashui.yaml"), nil
}

// UserConfigPath is the location WriteConfigFile writes to.
func UserConfigPath() (string, error) {
	return getConfigPath(false)
}

// SystemConfigPath is the machine wide config file.
func SystemConfigPath() (string, error) {
	return getConfigPath(true)
}

// LoadConfig resolves a T from defaults, the first dashui.yaml found (or the
// explicit path), the environment and cmd's flags. A missing config file is
// reported as viper.ConfigFileNotFoundError alongside a fully populated T.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("dashui")
	v.SetConfigType("yaml")

	if explicitPath != nil && *explicitPath != "" {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, fmt.Errorf("could not read config: %w", err)
		}
		notFound = err
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("dashui")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("could not decode config: %w", err)
	}

	return c, notFound
}

// WriteConfigFile persists c as YAML in the user (or system) config dir.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo persists c as YAML at path, creating parent dirs.
func WriteConfigFileTo[T any](c *T, path string) error {
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
