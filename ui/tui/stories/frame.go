// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package stories

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
)

// frame draws a story: its id, the widget and a status line fed by the
// widget's callbacks.
type frame struct {
	title  string
	child  util.Model
	status func() string
	theme  theme.Theme
	size   util.Size
}

func newFrame(title string, child util.Model, status func() string, t theme.Theme) *frame {
	return &frame{title: title, child: child, status: status, theme: t}
}

func (f *frame) Init() tea.Cmd {
	return f.child.Init()
}

func (f *frame) Update(msg tea.Msg) tea.Cmd {
	if f.size.Update(msg) {
		// title and status line, plus padding
		return f.child.Update(f.size.Shrink(4, 6).ToMsg())
	}
	if msg, ok := msg.(theme.ChangedMsg); ok {
		f.theme = msg.Theme
	}
	return f.child.Update(msg)
}

func (f *frame) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(f.theme.Accent).
		MarginBottom(1).
		Render(f.title)
	parts := []string{title, f.child.View()}
	if f.status != nil {
		if s := f.status(); s != "" {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(f.theme.Faint).
				MarginTop(1).
				Render(s))
		}
	}
	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (f *frame) Focus() (tea.Cmd, help.KeyMap) {
	return f.child.Focus()
}

func (f *frame) Blur() {
	f.child.Blur()
}

// *frame implements util.Model
var _ util.Model = (*frame)(nil)
