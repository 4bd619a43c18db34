// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package fieldinput

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dashui/internal/i18n"
)

const (
	defaultWidth = 40
	clearGlyph   = "✕"
)

func (m *Model) padding() (vertical, horizontal int) {
	switch m.Size {
	case Small:
		return 0, 1
	case Large:
		return 1, 3
	default:
		return 0, 2
	}
}

func (m *Model) totalWidth() int {
	switch {
	case m.width > 0:
		return m.width
	case m.size.Width > 0:
		return m.size.Width
	default:
		return defaultWidth
	}
}

func (m *Model) borderColor() lipgloss.Color {
	switch {
	case m.Invalid:
		return m.Theme.Error
	case m.Disabled:
		return m.Theme.DisabledText
	case m.focused:
		return m.Theme.FocusBorder
	default:
		return m.Theme.Border
	}
}

func (m *Model) boxStyle() lipgloss.Style {
	v, h := m.padding()
	style := lipgloss.NewStyle().Padding(v, h)

	switch m.Variant {
	case Filled:
		style = style.
			Border(lipgloss.NormalBorder()).
			Background(m.Theme.Surface).
			BorderBackground(m.Theme.Surface)
	case Ghost:
		style = style.Border(lipgloss.NormalBorder(), false, false, true, false)
	default:
		style = style.Border(lipgloss.RoundedBorder())
	}
	style = style.BorderForeground(m.borderColor())

	if m.Disabled {
		style = style.
			Foreground(m.Theme.DisabledText).
			Background(m.Theme.DisabledSurface)
	}
	return style
}

// controls renders the right hand side of the field: the progress
// indicator while loading, otherwise the visible clear and reveal controls.
func (m *Model) controls() string {
	if m.loading {
		return m.spinner.View()
	}
	var parts []string
	if m.ClearVisible() {
		parts = append(parts, clearGlyph)
	}
	if m.PasswordToggleVisible() {
		if m.Masked() {
			parts = append(parts, i18n.T("input.show"))
		} else {
			parts = append(parts, i18n.T("input.hide"))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) render() string {
	m.syncInput()

	text, faint := m.Theme.Text, m.Theme.Faint
	if m.Disabled {
		text = m.Theme.DisabledText
	}
	m.input.TextStyle = lipgloss.NewStyle().Foreground(text)
	m.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(faint)
	m.input.PromptStyle = lipgloss.NewStyle().Foreground(faint)
	if m.focused && !m.Disabled {
		m.input.PromptStyle = lipgloss.NewStyle().Foreground(m.Theme.Accent)
	}

	box := m.boxStyle()
	controls := lipgloss.NewStyle().Foreground(faint).Render(m.controls())
	inner := m.totalWidth() - box.GetHorizontalFrameSize()
	controlsWidth := lipgloss.Width(controls)
	if controlsWidth > 0 {
		controlsWidth++
	}
	m.input.Width = max(inner-controlsWidth-lipgloss.Width(m.input.Prompt)-1, 1)

	field := m.input.View()
	if controls != "" {
		gap := max(inner-lipgloss.Width(field)-lipgloss.Width(controls), 1)
		field += strings.Repeat(" ", gap) + controls
	}

	lines := make([]string, 0, 3)
	if m.Label != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(text).Bold(true).Render(m.Label))
	}
	lines = append(lines, box.Width(inner+box.GetHorizontalPadding()).Render(field))
	if msg, isError := m.Message(); msg != "" {
		style := lipgloss.NewStyle().Foreground(faint)
		if isError {
			style = style.Foreground(m.Theme.Error)
		}
		lines = append(lines, style.Render(msg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
