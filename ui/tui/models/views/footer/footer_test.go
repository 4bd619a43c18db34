// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
)

type baseKeys struct{ Exit key.Binding }

func (k baseKeys) ShortHelp() []key.Binding  { return []key.Binding{k.Exit} }
func (k baseKeys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Exit}} }

type pageKeys struct{ Save key.Binding }

func (k pageKeys) ShortHelp() []key.Binding  { return []key.Binding{k.Save} }
func (k pageKeys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Save}} }

func TestFooterMergesBaseKeyMap(t *testing.T) {
	base := baseKeys{Exit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit"))}
	page := pageKeys{Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save"))}

	m := New(base, theme.LightTheme)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 2})
	m.Update(util.AnnounceKeyMapMsg{KeyMap: page})

	view := m.View()
	for _, want := range []string{"save", "exit"} {
		if !strings.Contains(view, want) {
			t.Errorf("footer misses %q: %q", want, view)
		}
	}
	if got := SizeConfig.Calculate(m, 10, 10); got != 2 {
		t.Errorf("height = %d, want 2", got)
	}
}

func TestFooterStatus(t *testing.T) {
	m := New(nil, theme.DarkTheme)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 3})

	m.Update(SetError("boom")())
	if st := m.Status(); st.Text != "boom" || !st.Error {
		t.Fatalf("status = %+v", st)
	}
	if !strings.Contains(m.View(), "boom") {
		t.Fatal("status line not rendered")
	}
	if got := SizeConfig.Calculate(m, 10, 10); got != 3 {
		t.Errorf("height with status = %d, want 3", got)
	}

	m.Update(SetStatus("")())
	if strings.Contains(m.View(), "boom") {
		t.Fatal("status line should be cleared")
	}
}
