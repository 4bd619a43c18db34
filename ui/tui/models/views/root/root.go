// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root is the top level model of the demo dashboard.
package root

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dashui/buildvars"
	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/internal/logging"
	"github.com/toeirei/dashui/ui/tui/models/components/header"
	"github.com/toeirei/dashui/ui/tui/models/components/popup"
	"github.com/toeirei/dashui/ui/tui/models/components/stack"
	"github.com/toeirei/dashui/ui/tui/models/components/tabs"
	windowtitle "github.com/toeirei/dashui/ui/tui/models/helpers/title"
	"github.com/toeirei/dashui/ui/tui/models/views/about"
	"github.com/toeirei/dashui/ui/tui/models/views/content"
	"github.com/toeirei/dashui/ui/tui/models/views/footer"
	"github.com/toeirei/dashui/ui/tui/models/views/users"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
)

type Model struct {
	KeyMap KeyMap

	stack        *stack.Model
	content      *content.Model
	injector     *popup.Injector
	footer       *footer.Model
	titleHandler *windowtitle.TitleHandler
	theme        theme.Theme
}

func New(t theme.Theme, userOpts ...users.NewOpt) *Model {
	keyMap := DefaultKeyMap()
	version := buildvars.VersionOrDefault("dev")
	title := i18n.T("app.title")

	_header := header.New(title, version, t)
	_content := content.New(t, userOpts...)
	_injector := popup.NewInjector(_content, t)
	// tab keys work everywhere, so they are listed with the global keys
	_footer := footer.New(util.MergeKeyMaps(tabs.DefaultKeyMap(), keyMap), t)

	return &Model{
		KeyMap: keyMap,
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithItem(_header, header.SizeConfig),
			stack.WithItem(_injector, stack.VariableSize(1)),
			stack.WithItem(_footer, footer.SizeConfig),
		),
		content:      _content,
		injector:     _injector,
		footer:       _footer,
		titleHandler: windowtitle.NewHandler(title, " | "),
		theme:        t,
	}
}

func (m *Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// handle keys messages
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.KeyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.Help):
			m.footer.ToggleExpanded()
			return m, m.relayout()
		case key.Matches(msg, m.KeyMap.Theme):
			next := theme.For(m.theme.Mode.Toggle())
			logging.Debugf("root: switching theme to %s", next.Mode)
			return m, theme.Set(next)
		case key.Matches(msg, m.KeyMap.About):
			if m.injector.Open() {
				return m, nil
			}
			return m, popup.Open(about.New(m.theme))
		}

		return m, m.update(msg)
	}
	if msg, ok := msg.(theme.ChangedMsg); ok {
		m.theme = msg.Theme
	}
	// handle window title messages
	if windowtitle.IsTitleMsg(msg) {
		return m, m.titleHandler.Handle(msg)
	}
	// handle other messages
	return m, m.update(msg)
}

func (m *Model) View() string {
	return m.stack.View()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)

func (m *Model) Content() *content.Model {
	return m.content
}

func (m *Model) Footer() *footer.Model {
	return m.footer
}

func (m *Model) Theme() theme.Theme {
	return m.theme
}

func (m *Model) Title() string {
	return m.titleHandler.Title()
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	cmd := m.stack.Update(msg)
	m.content.SetOrigin(0, m.stack.Offset(1))
	return cmd
}

// relayout replays the last window size, the footer height depends on
// whether the full help is shown.
func (m *Model) relayout() tea.Cmd {
	return m.update(m.stack.Size().ToMsg())
}
