// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dashui/ui/tui/util"
	"github.com/toeirei/dashui/util/slicest"
)

// MsgFilter may rewrite or drop (by returning nil) a message before it
// reaches a model.
type MsgFilter = func(model util.Model, msg tea.Msg) tea.Msg

func applyMessageFilters(model util.Model, msg tea.Msg, msgFilters []MsgFilter) tea.Msg {
	return slicest.ReduceD(msgFilters, msg, func(msgFilter MsgFilter, msg tea.Msg) tea.Msg {
		if msg == nil {
			return nil
		}
		return msgFilter(model, msg)
	})
}

// OnlyWhenFocused drops key and mouse messages unless the model is the
// focused one according to focused.
func OnlyWhenFocused(focused func() bool) MsgFilter {
	return func(_ util.Model, msg tea.Msg) tea.Msg {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			if !focused() {
				return nil
			}
		}
		return msg
	}
}
