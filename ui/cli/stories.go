// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/ui/tui"
	"github.com/toeirei/dashui/ui/tui/stories"
)

func newStoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stories",
		Short: "List the widget stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range stories.All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-30s %s\n", s.ID(), s.Mode); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newStoryCmd(a *app) *cobra.Command {
	var static bool
	cmd := &cobra.Command{
		Use:   "story NAME",
		Short: "Show one widget story full screen",
		Long: `Shows one story from "dashui stories". NAME is "Component/Name" or,
when unique, just the story name. Press esc or ctrl+c to quit.`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return stories.IDs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			story, ok := stories.Find(args[0])
			if !ok {
				return errors.New(i18n.T("stories.unknown", args[0]))
			}

			out := cmd.OutOrStdout()
			if static || !isTerminal(out) {
				_, err := fmt.Fprintln(out, tui.RenderStatic(story.Model(), staticWidth, 24))
				return err
			}
			return a.withLog(func() error {
				return tui.RunModel(cmd.Context(), story.Model())
			})
		},
	}
	cmd.Flags().BoolVar(&static, "static", false, "print the story once instead of starting the TUI")
	return cmd
}
