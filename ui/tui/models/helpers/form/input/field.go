// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package forminput holds the inputs a form can be built from.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dashui/ui/tui/models/components/fieldinput"
	"github.com/toeirei/dashui/ui/tui/models/helpers/form"
)

// Field puts a fieldinput.Model into a form. Enter moves on to the next
// input.
type Field struct {
	Next  key.Binding
	model *fieldinput.Model
}

func NewField(opts ...fieldinput.NewOpt) *Field {
	return &Field{
		Next:  key.NewBinding(key.WithKeys("enter")),
		model: fieldinput.New(opts...),
	}
}

// Model gives access to the wrapped field.
func (f *Field) Model() *fieldinput.Model {
	return f.model
}

func (f *Field) Init() tea.Cmd {
	return f.model.Init()
}

func (f *Field) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, f.Next) {
		return nil, form.ActionNext
	}
	return f.model.Update(msg), form.ActionNone
}

func (f *Field) View(width int) string {
	f.model.SetWidth(width)
	return f.model.View()
}

func (f *Field) Focus() (tea.Cmd, help.KeyMap) {
	return f.model.Focus()
}

func (f *Field) Blur() {
	f.model.Blur()
}

func (f *Field) Get() any {
	return f.model.Value()
}

func (f *Field) Set(value any) {
	if value, ok := value.(string); ok {
		f.model.SetValue(value)
	}
}

func (f *Field) Reset() {
	f.model.Reset()
}

// Skip keeps disabled fields out of the focus cycle.
func (f *Field) Skip() bool {
	return f.model.Disabled
}

var (
	_ form.FormInput = (*Field)(nil)
	_ form.Skipper   = (*Field)(nil)
)
