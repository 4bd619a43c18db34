// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package inputs is the "Input Fields" page of the demo: four fields in
// different states and a Cancel / Save row.
package inputs

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/internal/logging"
	"github.com/toeirei/dashui/ui/tui/models/components/fieldinput"
	"github.com/toeirei/dashui/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/dashui/ui/tui/models/helpers/form/input"
	"github.com/toeirei/dashui/ui/tui/models/views/footer"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
)

const maxFormWidth = 90

// Values is what Save decodes the fields into.
type Values struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Invalid  string `mapstructure:"invalid"`
}

type Model struct {
	// OnSave is called with the decoded values after a successful save.
	OnSave func(Values)

	form  *form.Form[Values]
	theme theme.Theme
	size  util.Size
}

func New(t theme.Theme) *Model {
	m := &Model{theme: t}

	save := forminput.NewButton(i18n.T("inputs.save"), form.ActionSubmit, t)
	save.Primary = true

	m.form = form.New(
		form.WithInput[Values]("username", forminput.NewField(
			fieldinput.WithLabel(i18n.T("inputs.username")),
			fieldinput.WithPlaceholder(i18n.T("inputs.username_placeholder")),
			fieldinput.WithHelperText(i18n.T("inputs.username_helper")),
			fieldinput.WithVariant(fieldinput.Outlined),
			fieldinput.WithSize(fieldinput.Medium),
			fieldinput.WithClearButton(),
			fieldinput.WithTheme(t),
		)),
		form.WithInlineInput[Values]("password", forminput.NewField(
			fieldinput.WithLabel(i18n.T("inputs.password")),
			fieldinput.WithPlaceholder(i18n.T("inputs.password_placeholder")),
			fieldinput.WithType(fieldinput.Password),
			fieldinput.WithVariant(fieldinput.Filled),
			fieldinput.WithSize(fieldinput.Medium),
			fieldinput.WithPasswordToggle(),
			fieldinput.WithTheme(t),
		)),
		form.WithInput[Values]("disabled", forminput.NewField(
			fieldinput.WithLabel(i18n.T("inputs.disabled")),
			fieldinput.WithPlaceholder(i18n.T("inputs.disabled_placeholder")),
			fieldinput.WithDisabled(true),
			fieldinput.WithVariant(fieldinput.Ghost),
			fieldinput.WithSize(fieldinput.Medium),
			fieldinput.WithTheme(t),
		)),
		form.WithInlineInput[Values]("invalid", forminput.NewField(
			fieldinput.WithLabel(i18n.T("inputs.invalid")),
			fieldinput.WithPlaceholder(i18n.T("inputs.invalid_placeholder")),
			fieldinput.WithInvalid(true),
			fieldinput.WithError(i18n.T("inputs.invalid_error")),
			fieldinput.WithVariant(fieldinput.Outlined),
			fieldinput.WithSize(fieldinput.Medium),
			fieldinput.WithTheme(t),
		)),
		form.WithInput[Values]("cancel", forminput.NewButton(i18n.T("inputs.cancel"), form.ActionReset, t)),
		form.WithInlineInput[Values]("save", save),
		form.WithOnSubmit(m.save),
		form.WithOnReset[Values](func() tea.Cmd {
			return footer.SetStatus(i18n.T("inputs.reset"))
		}),
	)
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return m.form.Update(tea.WindowSizeMsg{
			Width:  max(min(m.size.Width-2, maxFormWidth), 0),
			Height: max(m.size.Height-2, 0),
		})
	}
	if msg, ok := msg.(theme.ChangedMsg); ok {
		m.theme = msg.Theme
	}
	return m.form.Update(msg)
}

func (m *Model) View() string {
	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Accent).
		MarginBottom(1).
		Render(i18n.T("inputs.heading"))
	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, heading, m.form.View()))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.form.Focus()
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Values decodes the current field contents.
func (m *Model) Values() (Values, error) {
	return m.form.Get()
}

// Reset empties every field.
func (m *Model) Reset() tea.Cmd {
	return m.form.Reset()
}

func (m *Model) save(values Values, err error) tea.Cmd {
	if err != nil {
		logging.Errorf("inputs: decoding form: %v", err)
		return footer.SetError(i18n.T("inputs.save_failed", err))
	}
	logging.Infof("inputs: saved changes for %q", values.Username)
	if m.OnSave != nil {
		m.OnSave(values)
	}
	return footer.SetStatus(i18n.T("inputs.saved", values.Username))
}
