// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/dashui/internal/i18n"
)

type KeyMap struct {
	Exit  key.Binding
	Help  key.Binding
	Theme key.Binding
	About key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Exit, km.Help}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Help, km.Theme, km.About, km.Exit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", i18n.T("key.exit")),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", i18n.T("key.help")),
		),
		Theme: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", i18n.T("key.theme")),
		),
		About: key.NewBinding(
			key.WithKeys("f12"),
			key.WithHelp("f12", i18n.T("key.about")),
		),
	}
}
