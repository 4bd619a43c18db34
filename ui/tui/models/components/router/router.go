// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package router shows one model out of a stack and swaps it on command.
package router

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dashui/ui/tui/util"
)

var lastRouterID atomic.Int64

type Router struct {
	id          int
	size        util.Size
	focused     bool
	model_stack []util.Model
}

func New(initial_model util.Model) (*Router, Control) {
	id := int(lastRouterID.Add(1))
	return &Router{
			id:          id,
			model_stack: []util.Model{initial_model},
		}, Control{
			rid: id,
		}
}

func (r Router) Init() tea.Cmd {
	return tea.Batch(
		r.activeModelGet().Init(),
		r.activeModelUpdate(InitMsg{Control: Control{rid: r.id}}),
	)
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if r.size.Update(msg) {
		// pass window size messages
		cmd = r.activeModelUpdate(msg)
	} else if r.isMsgOwner(msg) {
		// handle control messages meant for this router
		switch msg := msg.(type) {
		case PushMsg:
			cmd = r.handlePush(msg)
		case PopMsg:
			cmd = r.handlePop(msg)
		case ChangeMsg:
			cmd = r.handleChange(msg)
		}
	} else if IsRouterMsg(msg) {
		// do not pass init messages, to prevent childs from obtaining parent routers Control
		if _, ok := msg.(InitMsg); !ok {
			// pass other control messages for child routers
			cmd = r.activeModelUpdate(msg)
		}
	} else {
		// pass other messages
		cmd = r.activeModelUpdate(msg)
	}

	return cmd
}

func (r Router) View() string {
	return r.activeModelGet().View()
}

func (r *Router) Focus() (tea.Cmd, help.KeyMap) {
	r.focused = true
	return r.activeModelGet().Focus()
}

func (r *Router) Blur() {
	r.focused = false
	r.activeModelGet().Blur()
}

// *Router implements util.Model
var _ util.Model = (*Router)(nil)

// Active returns the model currently shown.
func (r *Router) Active() util.Model {
	return r.activeModelGet()
}

// Depth returns the number of stacked models.
func (r *Router) Depth() int {
	return len(r.model_stack)
}

func (r *Router) isMsgOwner(msg tea.Msg) bool {
	rmsg, ok := msg.(RouterMsg)
	return ok && rmsg.routerID() == r.id
}

func IsRouterMsg(msg tea.Msg) bool {
	_, ok := msg.(RouterMsg)
	return ok
}
