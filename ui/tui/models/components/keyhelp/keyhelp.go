// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
)

type Model struct {
	KeyMap   help.KeyMap
	Expanded bool

	size util.Size
	help help.Model
}

func New(t theme.Theme) *Model {
	m := &Model{help: help.New()}
	m.applyTheme(t)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return nil
	}

	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		m.KeyMap = msg.KeyMap
	case theme.ChangedMsg:
		m.applyTheme(msg.Theme)
	}
	return nil
}

func (m Model) View() string {
	if m.KeyMap == nil {
		return ""
	}
	if m.Expanded {
		return FullHelpView(m.help, m.KeyMap.FullHelp())
	}
	return ShortHelpView(m.help, m.KeyMap.ShortHelp())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}

func (m *Model) applyTheme(t theme.Theme) {
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent)
	descStyle := lipgloss.NewStyle().Foreground(t.Faint)
	sepStyle := lipgloss.NewStyle().Foreground(t.Border)

	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.ShortDesc = descStyle
	m.help.Styles.ShortSeparator = sepStyle
	m.help.Styles.FullKey = keyStyle
	m.help.Styles.FullDesc = descStyle
	m.help.Styles.FullSeparator = sepStyle
	m.help.Styles.Ellipsis = sepStyle
}
