// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/toeirei/dashui/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("could not encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	var system bool
	var path string
	write := &cobra.Command{
		Use:   "write",
		Short: "Write the effective configuration to a dashui.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if path == "" {
				path, err = configFilePath(system)
				if err != nil {
					return err
				}
			}
			if err := config.WriteConfigFileTo(&a.cfg, path); err != nil {
				return fmt.Errorf("could not write config: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	write.Flags().BoolVar(&system, "system", false, "write the system wide file instead of the user file")
	write.Flags().StringVar(&path, "path", "", "write to this file")

	cmd.AddCommand(show, write)
	return cmd
}

func configFilePath(system bool) (string, error) {
	if system {
		return config.SystemConfigPath()
	}
	return config.UserConfigPath()
}
