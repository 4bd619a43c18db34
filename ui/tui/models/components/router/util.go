// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dashui/ui/tui/util"
)

func (r *Router) activeModelGet() util.Model {
	return r.model_stack[len(r.model_stack)-1]
}

func (r *Router) activeModelSet(model util.Model) {
	r.model_stack[len(r.model_stack)-1] = model
}

func (r *Router) activeModelPop() util.Model {
	model := r.activeModelGet()
	r.model_stack = r.model_stack[:len(r.model_stack)-1]
	return model
}

func (r *Router) activeModelUpdate(msg tea.Msg) tea.Cmd {
	return r.activeModelGet().Update(msg)
}

func (r *Router) activeModelFocus() tea.Cmd {
	if !r.focused {
		return nil
	}
	cmd, keyMap := r.activeModelGet().Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

func (r *Router) activeModelInit() tea.Cmd {
	return tea.Sequence(
		r.activeModelGet().Init(),
		r.activeModelUpdate(InitMsg{Control: Control{rid: r.id}}),
		r.activeModelUpdate(r.size.ToMsg()),
		r.activeModelFocus(),
	)
}
