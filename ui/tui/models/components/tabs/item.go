// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package tabs

import tea "github.com/charmbracelet/bubbletea"

func WithItem(id string, name string) Item {
	return Item{
		Id:   id,
		Name: name,
	}
}

type Item struct {
	Id   string
	Name string
}

// ItemSelected is sent whenever the active tab changes.
type ItemSelected struct {
	Id    string
	Index int
}

func selected(item Item, index int) tea.Cmd {
	return func() tea.Msg { return ItemSelected{Id: item.Id, Index: index} }
}
