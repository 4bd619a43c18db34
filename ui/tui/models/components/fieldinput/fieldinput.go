// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package fieldinput is a labelled single line text field with variants,
// sizes, an optional clear control and an optional password reveal toggle.
//
// The field keeps its own buffer. SetValue overwrites that buffer only when
// the value passed in differs from the one passed last time; edits flow
// back out through OnChange and never the other way.
package fieldinput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dashui/internal/logging"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
)

type Model struct {
	// OnChange is called with the new text after every edit and after the
	// field was cleared.
	OnChange func(value string)

	Label        string
	Placeholder  string
	HelperText   string
	ErrorMessage string
	Disabled     bool
	Invalid      bool

	Variant Variant
	Size    Size
	Type    Type

	ShowClearButton    bool
	ShowPasswordToggle bool

	Theme theme.Theme

	external string
	initial  string
	loading  bool
	revealed bool
	focused  bool
	width    int
	size     util.Size
	keyMap   KeyMap
	input    textinput.Model
	spinner  spinner.Model
}

func New(opts ...NewOpt) *Model {
	m := &Model{
		Variant: Outlined,
		Size:    Medium,
		Type:    Text,
		Theme:   theme.LightTheme,
		keyMap:  DefaultKeyMap(),
		input:   textinput.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initial = m.external
	m.syncInput()
	m.syncKeyMap()
	return m
}

func (m *Model) Init() tea.Cmd {
	if m.loading {
		return m.spinner.Tick
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	switch msg := msg.(type) {
	case theme.ChangedMsg:
		m.SetTheme(msg.Theme)
		return nil
	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		if !m.focused || m.Disabled {
			return nil
		}
		switch {
		case key.Matches(msg, m.keyMap.Clear):
			m.Clear()
			return nil
		case key.Matches(msg, m.keyMap.Reveal):
			m.TogglePassword()
			return nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.syncInput()
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			m.changed(after)
		}
		return cmd
	}
	return nil
}

func (m *Model) View() string {
	return m.render()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	m.syncKeyMap()
	if m.Disabled {
		return nil, &m.keyMap
	}
	return m.input.Focus(), &m.keyMap
}

func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// SetValue hands the field a value from outside. The buffer is replaced
// only when value differs from the previous external value, so local edits
// survive re-renders that pass the same value again.
func (m *Model) SetValue(value string) {
	if value == m.external {
		return
	}
	m.external = value
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.syncKeyMap()
}

// Value returns the text currently in the buffer.
func (m *Model) Value() string {
	return m.input.Value()
}

// Clear empties the buffer and reports "" through OnChange. It does nothing
// while the clear control is hidden.
func (m *Model) Clear() bool {
	if !m.ClearVisible() {
		return false
	}
	m.input.SetValue("")
	m.changed("")
	logging.Debugf("fieldinput %q: cleared", m.Label)
	return true
}

// TogglePassword switches between masked and plain presentation. The value
// is not touched.
func (m *Model) TogglePassword() bool {
	if !m.PasswordToggleVisible() {
		return false
	}
	m.revealed = !m.revealed
	m.syncInput()
	return true
}

// Reset puts back the value the field was created with and masks
// passwords again without calling OnChange.
func (m *Model) Reset() {
	m.external = m.initial
	m.revealed = false
	m.input.SetValue(m.initial)
	m.input.CursorEnd()
	m.syncInput()
	m.syncKeyMap()
}

// SetLoading switches the progress indicator and returns the command that
// drives it.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	m.loading = loading
	m.syncKeyMap()
	if loading {
		return m.spinner.Tick
	}
	return nil
}

func (m *Model) SetDisabled(disabled bool) {
	m.Disabled = disabled
	if disabled {
		m.input.Blur()
	} else if m.focused {
		m.input.Focus()
	}
	m.syncKeyMap()
}

func (m *Model) SetInvalid(invalid bool, message string) {
	m.Invalid = invalid
	m.ErrorMessage = message
}

func (m *Model) SetTheme(t theme.Theme) {
	m.Theme = t
}

// SetWidth fixes the rendered width. Zero falls back to the window size.
func (m *Model) SetWidth(width int) {
	m.width = max(width, 0)
}

func (m *Model) Loading() bool { return m.loading }
func (m *Model) Focused() bool { return m.focused }

// Masked reports whether the value is currently rendered as bullets.
func (m *Model) Masked() bool {
	return m.Type == Password && !(m.ShowPasswordToggle && m.revealed)
}

func (m *Model) ClearVisible() bool {
	return m.ShowClearButton && m.input.Value() != "" && !m.loading && !m.Disabled
}

func (m *Model) PasswordToggleVisible() bool {
	return m.Type == Password && m.ShowPasswordToggle && !m.loading
}

// Message is the line under the field: the error while invalid, the
// helper text otherwise.
func (m *Model) Message() (text string, isError bool) {
	if m.Invalid {
		return m.ErrorMessage, m.ErrorMessage != ""
	}
	return m.HelperText, false
}

func (m *Model) changed(value string) {
	m.syncKeyMap()
	if m.OnChange != nil {
		m.OnChange(value)
	}
}

// syncInput copies the exported settings onto the inner text input.
func (m *Model) syncInput() {
	m.input.Placeholder = m.Placeholder
	m.input.Prompt = m.Type.prompt()
	if m.Masked() {
		m.input.EchoMode = textinput.EchoPassword
		m.input.EchoCharacter = '•'
	} else {
		m.input.EchoMode = textinput.EchoNormal
	}
}

func (m *Model) syncKeyMap() {
	m.keyMap.Clear.SetEnabled(m.ClearVisible())
	m.keyMap.Reveal.SetEnabled(m.PasswordToggleVisible() && !m.Disabled)
}
