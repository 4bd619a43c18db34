// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tabs renders a single row of tab labels and switches between
// them with keys or mouse clicks.
package tabs

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	windowtitle "github.com/toeirei/dashui/ui/tui/models/helpers/title"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
	"github.com/toeirei/dashui/util/slicest"
)

const gap = 1

type Model struct {
	Items  []Item
	KeyMap KeyMap

	active int
	size   util.Size
	theme  theme.Theme
	// terminal cell of the top left corner, used for mouse hits
	originX, originY int
}

func New(t theme.Theme, items ...Item) *Model {
	return &Model{
		Items:  items,
		KeyMap: DefaultKeyMap(),
		theme:  t,
	}
}

// Init announces the initial tab.
func (m Model) Init() tea.Cmd {
	if len(m.Items) == 0 {
		return nil
	}
	return m.announce()
}

// Update handles tab keys regardless of focus; the tab bar is global
// navigation.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) || len(m.Items) == 0 {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Next):
			return m.Select(util.Wrap(m.active, 1, len(m.Items)))
		case key.Matches(msg, m.KeyMap.Prev):
			return m.Select(util.Wrap(m.active, -1, len(m.Items)))
		}
	case tea.MouseMsg:
		mouse := tea.MouseEvent(msg)
		if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
			return nil
		}
		if i, ok := m.itemAt(mouse.X-m.originX, mouse.Y-m.originY); ok {
			return m.Select(i)
		}
	case theme.ChangedMsg:
		m.theme = msg.Theme
	}
	return nil
}

func (m Model) labels() []string {
	return slicest.MapI(m.Items, func(i int, item Item) string {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(m.theme.Faint)
		if i == m.active {
			style = style.
				Bold(true).
				Foreground(m.theme.Surface).
				Background(m.theme.Accent)
		}
		return style.Render(item.Name)
	})
}

func (m Model) View() string {
	labels := m.labels()
	row := make([]string, 0, len(labels)*2)
	for i, label := range labels {
		if i > 0 {
			row = append(row, lipgloss.NewStyle().Width(gap).Render(""))
		}
		row = append(row, label)
	}
	return lipgloss.
		NewStyle().
		MaxWidth(m.size.Width).
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		BorderForeground(m.theme.Border).
		Width(m.size.Width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, row...))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, m.KeyMap
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Select activates tab i and announces it. Out of range indices are
// ignored.
func (m *Model) Select(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	m.active = i
	return m.announce()
}

func (m Model) Active() Item {
	return m.Items[m.active]
}

func (m Model) ActiveIndex() int {
	return m.active
}

func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

func (m Model) announce() tea.Cmd {
	item := m.Items[m.active]
	return tea.Batch(selected(item, m.active), windowtitle.Set(item.Name))
}

// itemAt maps a position relative to the tab bar to a tab index.
func (m Model) itemAt(x, y int) (int, bool) {
	if y != 0 || x < 0 {
		return 0, false
	}
	left := 0
	for i, label := range m.labels() {
		right := left + lipgloss.Width(label)
		if x >= left && x < right {
			return i, true
		}
		left = right + gap
	}
	return 0, false
}
