// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package users

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/dashui/internal/i18n"
)

type KeyMap struct {
	Focus          key.Binding
	Copy           key.Binding
	ClearSelection key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Focus, km.Copy, km.ClearSelection}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Focus}, {km.Copy, km.ClearSelection}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", i18n.T("key.focus")),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", i18n.T("key.copy")),
		),
		ClearSelection: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", i18n.T("key.clear_selection")),
		),
	}
}
