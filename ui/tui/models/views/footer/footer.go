// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dashui/ui/tui/models/components/keyhelp"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
)

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	status     StatusMsg
	theme      theme.Theme
}

func New(baseKeyMap help.KeyMap, t theme.Theme) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(t),
		theme:      t,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		// inject baseKeyMap
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	case StatusMsg:
		m.status = msg
		return nil
	case theme.ChangedMsg:
		m.theme = msg.Theme
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

func (m Model) view() string {
	if m.status.Text == "" {
		return m.help.View()
	}
	style := lipgloss.NewStyle().Foreground(m.theme.Success)
	if m.status.Error {
		style = style.Foreground(m.theme.Error)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		style.MaxWidth(m.size.Width).Render(m.status.Text),
		m.help.View(),
	)
}

func (m Model) View() string {
	h_pos := lipgloss.Left
	if m.help.Expanded {
		h_pos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(m.theme.Border).
		Render(lipgloss.Place(
			m.size.Width, max(m.size.Height-1, 0),
			h_pos, lipgloss.Top,
			m.view(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

func (m Model) Status() StatusMsg {
	return m.status
}
