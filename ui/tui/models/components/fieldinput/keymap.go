// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package fieldinput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/dashui/internal/i18n"
)

type KeyMap struct {
	Clear  key.Binding
	Reveal key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Clear, km.Reveal}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Clear, km.Reveal}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", i18n.T("key.clear")),
		),
		Reveal: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", i18n.T("key.reveal")),
		),
	}
}
