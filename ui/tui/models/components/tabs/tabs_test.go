// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package tabs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dashui/ui/tui/theme"
)

func newTabs() *Model {
	m := New(theme.LightTheme,
		WithItem("inputs", "Input Fields"),
		WithItem("table", "Data Table"),
		WithItem("extra", "Extra"),
	)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 2})
	return m
}

// selectedIn runs a batch command and returns the ItemSelected it holds.
func selectedIn(t *testing.T, cmd tea.Cmd) ItemSelected {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatal("expected a batch")
	}
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(ItemSelected); ok {
			return msg
		}
	}
	t.Fatal("no ItemSelected in batch")
	return ItemSelected{}
}

func TestKeysCycleTabs(t *testing.T) {
	m := newTabs()

	got := selectedIn(t, m.Update(tea.KeyMsg{Type: tea.KeyCtrlT}))
	if got.Id != "table" || got.Index != 1 || m.ActiveIndex() != 1 {
		t.Fatalf("after next: %+v active=%d", got, m.ActiveIndex())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	got = selectedIn(t, m.Update(tea.KeyMsg{Type: tea.KeyCtrlT}))
	if got.Id != "inputs" {
		t.Fatalf("next should wrap to the first tab, got %+v", got)
	}

	got = selectedIn(t, m.Update(tea.KeyMsg{Type: tea.KeyCtrlLeft}))
	if got.Id != "extra" {
		t.Fatalf("prev should wrap to the last tab, got %+v", got)
	}
}

func TestMouseSelectsTab(t *testing.T) {
	m := newTabs()
	m.SetOrigin(0, 2)

	// " Input Fields " is 14 cells wide, followed by a 1 cell gap.
	click := tea.MouseMsg{X: 16, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	got := selectedIn(t, m.Update(click))
	if got.Id != "table" {
		t.Fatalf("clicked %+v, want table", got)
	}

	if cmd := m.Update(tea.MouseMsg{X: 16, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}); cmd != nil {
		t.Fatal("click below the labels should be ignored")
	}
	if cmd := m.Update(tea.MouseMsg{X: 14, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}); cmd != nil {
		t.Fatal("click on the gap should be ignored")
	}
}

func TestSelectAndView(t *testing.T) {
	m := newTabs()
	if cmd := m.Select(7); cmd != nil {
		t.Fatal("out of range select should be ignored")
	}
	m.Select(2)
	if m.Active().Id != "extra" {
		t.Fatalf("active = %+v", m.Active())
	}
	view := m.View()
	for _, want := range []string{"Input Fields", "Data Table", "Extra"} {
		if !strings.Contains(view, want) {
			t.Errorf("view misses %q", want)
		}
	}
	if SizeConfig.Calculate(m, 1, 1) != 0 || SizeConfig.Calculate(m, 10, 10) != 2 {
		t.Error("unexpected tab bar height")
	}
}
