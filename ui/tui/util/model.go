// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the in-place variant of tea.Model used by nested components:
// Update mutates the receiver and only returns a command.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

// Program adapts a Model to tea.Model so it can be run on its own.
type Program struct {
	Model Model
	Quit  KeyMatcher
}

// KeyMatcher reports whether a key press should end the program.
type KeyMatcher func(tea.KeyMsg) bool

func (p Program) Init() tea.Cmd {
	cmd, keyMap := p.Model.Focus()
	return tea.Batch(p.Model.Init(), cmd, AnnounceKeyMapCmd(keyMap))
}

func (p Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && p.Quit != nil && p.Quit(msg) {
		return p, tea.Quit
	}
	return p, p.Model.Update(msg)
}

func (p Program) View() string {
	return p.Model.View()
}

var _ tea.Model = Program{}
