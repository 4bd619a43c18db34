// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package content is the tabbed body of the demo: a tab bar above a router
// that shows the page of the active tab.
package content

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/internal/logging"
	"github.com/toeirei/dashui/ui/tui/models/components/router"
	"github.com/toeirei/dashui/ui/tui/models/components/stack"
	"github.com/toeirei/dashui/ui/tui/models/components/tabs"
	"github.com/toeirei/dashui/ui/tui/models/views/inputs"
	"github.com/toeirei/dashui/ui/tui/models/views/users"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
)

const (
	PageInputs = "inputs"
	PageTable  = "table"
)

type originSetter interface {
	SetOrigin(x, y int)
}

type Model struct {
	stack         *stack.Model
	tabs          *tabs.Model
	router        *router.Router
	routerControl router.Control
	pages         map[string]util.Model

	originX, originY int
}

func New(t theme.Theme, userOpts ...users.NewOpt) *Model {
	// stack {
	//   tabs
	//   router {
	//     inputs | users
	//   }
	// }
	pages := map[string]util.Model{
		PageInputs: inputs.New(t),
		PageTable:  users.New(t, userOpts...),
	}
	tabBar := tabs.New(t,
		tabs.WithItem(PageInputs, i18n.T("tab.inputs")),
		tabs.WithItem(PageTable, i18n.T("tab.table")),
	)
	routerModel, routerControl := router.New(pages[PageInputs])

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			// the tab bar reacts to its keys without focus
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithItem(tabBar, tabs.SizeConfig),
			stack.WithItem(routerModel, stack.VariableSize(1)),
		),
		tabs:          tabBar,
		router:        routerModel,
		routerControl: routerControl,
		pages:         pages,
	}
}

// Init starts the visible page. The router starts the others when their
// tab is selected.
func (m *Model) Init() tea.Cmd {
	return m.stack.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tabs.ItemSelected); ok {
		page, ok := m.pages[msg.Id]
		if !ok {
			logging.Warnf("content: no page for tab %q", msg.Id)
			return nil
		}
		return m.routerControl.Change(page)
	}

	cmd := m.stack.Update(msg)
	if _, ok := msg.(theme.ChangedMsg); ok {
		// hidden pages keep their colors in sync
		cmd = tea.Batch(cmd, m.updateHidden(msg))
	}
	m.updateOrigins()
	return cmd
}

func (m *Model) View() string {
	return m.stack.View()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.stack.Focus()
}

func (m *Model) Blur() {
	m.stack.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// SetOrigin tells the content where its top left corner is on screen.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
	m.updateOrigins()
}

// ActivePage returns the id of the page on screen.
func (m *Model) ActivePage() string {
	return m.tabs.Active().Id
}

// Page returns the page registered for id, or nil.
func (m *Model) Page(id string) util.Model {
	return m.pages[id]
}

func (m *Model) updateHidden(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, page := range m.pages {
		if page == m.router.Active() {
			continue
		}
		cmds = append(cmds, page.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (m *Model) updateOrigins() {
	m.tabs.SetOrigin(m.originX, m.originY)
	y := m.originY + m.stack.Offset(1)
	for _, page := range m.pages {
		if s, ok := page.(originSetter); ok {
			s.SetOrigin(m.originX, y)
		}
	}
}
