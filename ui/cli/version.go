// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/dashui/buildvars"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildvars.Resolve(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", info.Version)
			fmt.Fprintf(out, "commit: %s\n", info.Commit)
			if info.Date != "" {
				fmt.Fprintf(out, "built: %s\n", info.Date)
			}
			return nil
		},
	}
}
