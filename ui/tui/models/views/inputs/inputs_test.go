// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package inputs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	forminput "github.com/toeirei/dashui/ui/tui/models/helpers/form/input"
	"github.com/toeirei/dashui/ui/tui/models/views/footer"
	"github.com/toeirei/dashui/ui/tui/theme"
)

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func newPage() *Model {
	m := New(theme.LightTheme)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Focus()
	return m
}

func TestSaveDecodesValues(t *testing.T) {
	m := newPage()
	var saved Values
	m.OnSave = func(v Values) { saved = v }

	typeText(m, "alice")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "hunter2")

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if saved.Username != "alice" || saved.Password != "hunter2" {
		t.Fatalf("saved %+v", saved)
	}
	if cmd == nil {
		t.Fatal("save should report a status")
	}
	status, ok := cmd().(footer.StatusMsg)
	if !ok || status.Error || !strings.Contains(status.Text, "alice") {
		t.Fatalf("status = %#v", status)
	}
}

func TestFocusSkipsDisabledField(t *testing.T) {
	m := newPage()
	want := []string{"password", "invalid", "cancel", "save", "username"}
	for _, id := range want {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		if got := m.form.ActiveID(); got != id {
			t.Fatalf("focus = %q, want %q", got, id)
		}
	}
}

func TestResetClearsFields(t *testing.T) {
	m := newPage()
	typeText(m, "bob")
	m.Update(tea.KeyMsg{Type: tea.KeyF5})

	values, err := m.Values()
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if values != (Values{}) {
		t.Fatalf("after reset %+v", values)
	}
}

func TestViewShowsFieldStates(t *testing.T) {
	m := newPage()
	view := m.View()
	for _, want := range []string{
		"Input Fields",
		"Username",
		"This is helper text",
		"Password",
		"Disabled Input",
		"This field is required",
		"Cancel",
		"Save Changes",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view misses %q", want)
		}
	}
}

func TestThemeChangeReachesFields(t *testing.T) {
	m := newPage()
	m.Update(theme.ChangedMsg{Theme: theme.DarkTheme})
	if m.theme.Mode != theme.Dark {
		t.Fatal("page kept the old theme")
	}
	in, _ := m.form.Input("username")
	field, ok := in.(*forminput.Field)
	if !ok {
		t.Fatalf("username input is %T", in)
	}
	if field.Model().Theme.Mode != theme.Dark {
		t.Fatal("field kept the old theme")
	}
}
