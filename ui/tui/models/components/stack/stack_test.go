// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dashui/ui/tui/util"
)

type probe struct {
	text    string
	size    util.Size
	msgs    []tea.Msg
	focused bool
}

func (p *probe) Init() tea.Cmd { return nil }
func (p *probe) Update(msg tea.Msg) tea.Cmd {
	if !p.size.Update(msg) {
		p.msgs = append(p.msgs, msg)
	}
	return nil
}
func (p *probe) View() string                   { return p.text }
func (p *probe) Focus() (tea.Cmd, help.KeyMap) { p.focused = true; return nil, nil }
func (p *probe) Blur()                         { p.focused = false }

func TestVerticalSizes(t *testing.T) {
	t.Parallel()
	top, body, bottom := &probe{text: "top"}, &probe{text: "body"}, &probe{text: "bottom"}
	s := New(
		WithOrientation(Vertical),
		WithItem(top, StaticSize(2)),
		WithItem(body, VariableSize(1)),
		WithItem(bottom, StaticSize(1)),
	)
	s.Update(tea.WindowSizeMsg{Width: 20, Height: 10})

	if top.size.Height != 2 || bottom.size.Height != 1 {
		t.Fatalf("static heights = %d/%d, want 2/1", top.size.Height, bottom.size.Height)
	}
	if body.size.Height != 7 {
		t.Fatalf("variable height = %d, want 7", body.size.Height)
	}
	if body.size.Width != 20 {
		t.Fatalf("width = %d, want 20", body.size.Width)
	}
	if got := s.Offset(2); got != 9 {
		t.Fatalf("Offset(2) = %d, want 9", got)
	}
	view := s.View()
	for _, want := range []string{"top", "body", "bottom"} {
		if !strings.Contains(view, want) {
			t.Errorf("view misses %q", want)
		}
	}
}

func TestWeightsAndGap(t *testing.T) {
	t.Parallel()
	a, b := &probe{}, &probe{}
	s := New(WithGap(2), WithItem(a, VariableSize(1)), WithItem(b, VariableSize(3)))
	s.Update(tea.WindowSizeMsg{Width: 42, Height: 3})
	if a.size.Width != 10 || b.size.Width != 30 {
		t.Fatalf("widths = %d/%d, want 10/30", a.size.Width, b.size.Width)
	}
	if got := s.Offset(1); got != 12 {
		t.Fatalf("Offset(1) = %d, want 12", got)
	}
}

func TestBroadcastAndFilters(t *testing.T) {
	t.Parallel()
	a, b := &probe{}, &probe{}
	drop := func(_ util.Model, msg tea.Msg) tea.Msg {
		if _, ok := msg.(tea.KeyMsg); ok {
			return nil
		}
		return msg
	}
	s := New(WithItem(a, VariableSize(1)), WithItem(b, VariableSize(1), drop))
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(a.msgs) != 1 || len(b.msgs) != 0 {
		t.Fatalf("delivered %d/%d messages, want 1/0", len(a.msgs), len(b.msgs))
	}
}

func TestFocus(t *testing.T) {
	t.Parallel()
	a, b := &probe{}, &probe{}
	s := New(WithItem(a, VariableSize(1)), WithFocusNext(), WithItem(b, VariableSize(1)))
	s.Focus()
	if a.focused || !b.focused {
		t.Fatalf("focus = %v/%v, want false/true", a.focused, b.focused)
	}
	s.SetFocus(FocusAll())
	if !a.focused || !b.focused {
		t.Fatalf("focus all = %v/%v", a.focused, b.focused)
	}
	s.SetFocus(FocusIndex(0))
	if !a.focused || b.focused {
		t.Fatalf("focus index 0 = %v/%v", a.focused, b.focused)
	}

	only := OnlyWhenFocused(func() bool { return false })
	if only(a, tea.KeyMsg{}) != nil {
		t.Fatal("key passed an unfocused filter")
	}
	if only(a, tea.WindowSizeMsg{}) == nil {
		t.Fatal("size message was dropped")
	}
}
