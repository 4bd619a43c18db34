// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dashui/internal/logging"
	"github.com/toeirei/dashui/ui/tui/models/views/root"
	"github.com/toeirei/dashui/ui/tui/models/views/users"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
)

// QuitKeys end a program started with RunModel.
var QuitKeys = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

// Run shows the demo dashboard and blocks until it is closed.
func Run(ctx context.Context, t theme.Theme, userOpts ...users.NewOpt) error {
	return run(ctx, root.New(t, userOpts...))
}

// RunModel shows m full screen until one of QuitKeys is pressed.
func RunModel(ctx context.Context, m util.Model) error {
	return run(ctx, util.Program{
		Model: m,
		Quit: func(msg tea.KeyMsg) bool {
			return key.Matches(msg, QuitKeys)
		},
	})
}

// RenderStatic lays m out for a width x height screen and returns one
// frame, for output that is not a terminal.
func RenderStatic(m util.Model, width, height int) string {
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m.View()
}

func run(ctx context.Context, model tea.Model) error {
	logging.Debugf("tui: starting %T", model)
	_, err := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		// cancelled from outside, not a crash
		return ctx.Err()
	}
	logging.Debugf("tui: stopped %T (err=%v)", model, err)
	return err
}
