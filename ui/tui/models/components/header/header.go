// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
)

const logo string = " D "

type Model struct {
	Title   string
	Version string

	theme theme.Theme
	size  util.Size
}

func New(title, version string, t theme.Theme) *Model {
	return &Model{Title: title, Version: version, theme: t}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	if msg, ok := msg.(theme.ChangedMsg); ok {
		m.theme = msg.Theme
	}
	return nil
}

func (m Model) themeIndicator() string {
	if m.theme.Mode == theme.Dark {
		return "☾ " + i18n.T("theme.dark")
	}
	return "☀ " + i18n.T("theme.light")
}

func (m Model) View() string {
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(m.theme.Accent).
		Render(logo)
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Accent).
		Render(m.Title)
	version := lipgloss.NewStyle().
		Foreground(m.theme.Faint).
		Render(i18n.T("app.version", m.Version))
	left := lipgloss.JoinHorizontal(lipgloss.Center, badge, " ", title, "  ", version)

	right := lipgloss.NewStyle().
		Foreground(m.theme.Special).
		Render(m.themeIndicator())

	gap := max(m.size.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	line := left + lipgloss.NewStyle().Width(gap).Render("") + right

	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		BorderForeground(m.theme.Border).
		Render(line)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
