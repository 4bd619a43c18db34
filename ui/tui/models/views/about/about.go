// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package about is the popup with build and runtime information.
package about

import (
	"runtime"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dashui/buildvars"
	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/ui/tui/models/components/popup"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
)

type KeyMap struct {
	Close key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Close}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Close}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

type Model struct {
	KeyMap KeyMap

	info  buildvars.Info
	theme theme.Theme
}

func New(t theme.Theme) *Model {
	return &Model{
		KeyMap: KeyMap{
			Close: key.NewBinding(
				key.WithKeys("esc", "enter", "q"),
				key.WithHelp("esc", i18n.T("key.close")),
			),
		},
		info:  buildvars.Resolve(nil),
		theme: t,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.KeyMap.Close) {
			return popup.Close()
		}
	case theme.ChangedMsg:
		m.theme = msg.Theme
	}
	return nil
}

func (m *Model) View() string {
	label := lipgloss.NewStyle().Foreground(m.theme.Faint).Width(12)
	value := lipgloss.NewStyle().Foreground(m.theme.Text)
	row := func(name, v string) string {
		return label.Render(name) + value.Render(v)
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Accent).
		MarginBottom(1).
		Render(i18n.T("app.title"))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		row(i18n.T("about.version"), m.info.String()),
		row(i18n.T("about.go"), runtime.Version()+" "+runtime.GOOS+"/"+runtime.GOARCH),
		row(i18n.T("about.language"), i18n.GetLang()),
		row(i18n.T("about.theme"), i18n.T("theme."+string(m.theme.Mode))),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, m.KeyMap
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
