// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dashui/ui/tui/models/helpers/form"
	"github.com/toeirei/dashui/ui/tui/theme"
)

type Button struct {
	Label    string
	Disabled bool
	Primary  bool
	Action   form.Action
	KeyMap   ButtonKeyMap

	theme   theme.Theme
	focused bool
}

type ButtonKeyMap struct {
	Click key.Binding
}

func (k ButtonKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Click} }

func (k ButtonKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Click}} }

// NewButton creates a button that asks the form for action when pressed.
func NewButton(label string, action form.Action, t theme.Theme) *Button {
	return &Button{
		Label:  label,
		Action: action,
		KeyMap: ButtonKeyMap{
			Click: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", strings.ToLower(label)),
			),
		},
		theme: t,
	}
}

func (b *Button) Focus() (tea.Cmd, help.KeyMap) {
	b.focused = true
	return nil, b.KeyMap
}

func (b *Button) Blur() {
	b.focused = false
}

func (b *Button) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	switch msg := msg.(type) {
	case theme.ChangedMsg:
		b.theme = msg.Theme
	case tea.KeyMsg:
		if !b.Disabled && key.Matches(msg, b.KeyMap.Click) {
			return nil, b.Action
		}
	}
	return nil, form.ActionNone
}

func (b *Button) style() lipgloss.Style {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(b.theme.Border).
		Foreground(b.theme.Faint)
	switch {
	case b.Disabled:
		return style.Foreground(b.theme.DisabledText)
	case b.focused:
		style = style.BorderForeground(b.theme.FocusBorder).Bold(true)
	}
	if b.Primary {
		style = style.Foreground(b.theme.Accent)
	}
	return style
}

func (b *Button) View(width int) string {
	return b.style().MaxWidth(max(width, 0)).Render(b.Label)
}

func (b *Button) Skip() bool    { return b.Disabled }
func (b *Button) Get() any      { return nil }
func (b *Button) Init() tea.Cmd { return nil }
func (b *Button) Reset()        {}
func (b *Button) Set(any)       {}

var (
	_ form.FormInput = (*Button)(nil)
	_ form.Skipper   = (*Button)(nil)
)
