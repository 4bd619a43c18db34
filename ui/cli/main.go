// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/dashui/buildvars"
	"github.com/toeirei/dashui/internal/config"
	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/internal/logging"
	"github.com/toeirei/dashui/internal/record"
	"github.com/toeirei/dashui/internal/source"
	"github.com/toeirei/dashui/ui/tui"
	"github.com/toeirei/dashui/ui/tui/models/components/datatable"
	"github.com/toeirei/dashui/ui/tui/models/views/users"
	"github.com/toeirei/dashui/ui/tui/theme"
)

const defaultLogFile = "dashui.log"

// app is the state shared by the commands of one root command.
type app struct {
	cfg config.Config
	// configFound is false when no dashui.yaml was read.
	configFound bool
}

// Execute runs the CLI. The main package handles the process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree. Tests create one per case.
func NewRootCmd() *cobra.Command {
	a := &app{}
	defaults := config.Defaults()

	cmd := &cobra.Command{
		Use:   "dashui",
		Short: "Terminal widgets for tables and forms",
		Long: `dashui shows a data table and a field input widget in the terminal.

Running without a subcommand starts the demo dashboard with an
"Input Fields" and a "Data Table" tab.`,
		Version:       buildvars.Resolve(nil).String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLog(func() error {
				return tui.Run(cmd.Context(), a.theme(), a.userOptions()...)
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default: dashui.yaml in the user config dir, /etc/dashui or .)")
	flags.String("language", defaults["language"].(string), `UI language ("en", "de")`)
	flags.String("theme", defaults["theme"].(string), `color theme ("light", "dark")`)
	flags.Bool("debug", false, "log at debug level")
	flags.String("log-file", "", "log file while the TUI runs (default: "+defaultLogFile+")")

	cmd.AddCommand(
		newTableCmd(a),
		newStoriesCmd(),
		newStoryCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	path, err := configPathFromFlags(cmd)
	if err != nil {
		return err
	}

	a.cfg, err = config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	a.configFound = true
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		// first run, defaults are fine
		a.configFound = false
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if f := cmd.Flags().Lookup("log-file"); f != nil && f.Changed {
		a.cfg.LogFile = f.Value.String()
	}
	if a.cfg.LogFile == "" {
		a.cfg.LogFile = defaultLogFile
	}

	i18n.Init(a.cfg.Language)
	logging.SetDebug(a.cfg.Debug)
	logging.Debugf("config loaded (found=%t, language=%s, theme=%s)", a.configFound, a.cfg.Language, a.cfg.Theme)
	return nil
}

// withLog sends log output to the configured file while fn runs, the TUI
// owns the terminal.
func (a *app) withLog(fn func() error) error {
	closer, err := logging.Setup(a.cfg.LogFile, a.cfg.Debug)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)
	return fn()
}

func (a *app) theme() theme.Theme {
	return theme.For(theme.ParseMode(a.cfg.Theme))
}

// userOptions configures the demo table page. A configured source replaces
// the sample users.
func (a *app) userOptions() []users.NewOpt {
	opts := []users.NewOpt{
		users.WithTableOptions(
			datatable.WithSelectable(a.cfg.Table.Selectable),
			datatable.WithMultiSelect(a.cfg.Table.MultiSelect),
		),
	}
	spec := source.Spec(a.cfg.Source)
	if !spec.IsZero() {
		opts = append(opts, users.WithLoader(func(ctx context.Context) ([]*record.Map, []string, error) {
			return source.Load(ctx, spec)
		}))
	}
	return opts
}

func configPathFromFlags(cmd *cobra.Command) (*string, error) {
	// Only an explicitly set --config is used.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		logging.Warnf("close: %v", err)
	}
}
