// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package datatable

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/toeirei/dashui/internal/i18n"
)

type KeyMap struct {
	Table      table.KeyMap
	PrevColumn key.Binding
	NextColumn key.Binding
	Sort       key.Binding
	Toggle     key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Table.LineUp, km.Table.LineDown, km.PrevColumn, km.NextColumn, km.Sort, km.Toggle}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Table.LineUp, km.Table.LineDown, km.Table.PageUp, km.Table.PageDown},
		{km.Table.GotoTop, km.Table.GotoBottom},
		{km.PrevColumn, km.NextColumn, km.Sort, km.Toggle},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// DefaultKeyMap builds the bindings with help text in the current language.
// Space toggles the row, so it is taken out of the table's page down keys.
func DefaultKeyMap() KeyMap {
	tableKeys := table.DefaultKeyMap()
	tableKeys.PageDown = key.NewBinding(
		key.WithKeys("f", "pgdown"),
		key.WithHelp("f/pgdn", "page down"),
	)

	return KeyMap{
		Table: tableKeys,
		PrevColumn: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", i18n.T("key.column_left")),
		),
		NextColumn: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", i18n.T("key.column_right")),
		),
		Sort: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter/s", i18n.T("key.sort")),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", i18n.T("key.toggle")),
		),
	}
}
