// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dashui/ui/tui/util"
)

type page struct {
	name    string
	size    util.Size
	control Control
	focused bool
	keys    int
}

func (p *page) Init() tea.Cmd { return nil }
func (p *page) Update(msg tea.Msg) tea.Cmd {
	p.size.Update(msg)
	switch msg := msg.(type) {
	case InitMsg:
		p.control = msg.Control
	case tea.KeyMsg:
		p.keys++
	}
	return nil
}
func (p *page) View() string                   { return p.name }
func (p *page) Focus() (tea.Cmd, help.KeyMap) { p.focused = true; return nil, nil }
func (p *page) Blur()                          { p.focused = false }

func TestChangeSwapsPages(t *testing.T) {
	first, second := &page{name: "first"}, &page{name: "second"}
	r, control := New(first)
	r.Init()
	r.Focus()
	r.Update(tea.WindowSizeMsg{Width: 30, Height: 5})

	if first.control != control {
		t.Fatal("initial page did not receive the router control")
	}

	r.Update(control.Change(second)())
	if r.View() != "second" || r.Active() != second {
		t.Fatalf("active view = %q", r.View())
	}
	if first.focused || !second.focused {
		t.Fatalf("focus first=%v second=%v", first.focused, second.focused)
	}
	if second.size.Width != 30 || second.size.Height != 5 {
		t.Fatalf("new page size = %+v", second.size)
	}

	r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if first.keys != 0 || second.keys != 1 {
		t.Fatalf("keys first=%d second=%d", first.keys, second.keys)
	}

	if cmd := r.Update(control.Change(second)()); cmd != nil {
		t.Fatal("changing to the active page should be a no-op")
	}
}

func TestPushPop(t *testing.T) {
	base, top := &page{name: "base"}, &page{name: "top"}
	r, control := New(base)
	r.Focus()

	r.Update(control.Push(top)())
	if r.Depth() != 2 || r.View() != "top" {
		t.Fatalf("after push depth=%d view=%q", r.Depth(), r.View())
	}
	r.Update(control.Pop(5)())
	if r.Depth() != 1 || r.View() != "base" || !base.focused {
		t.Fatalf("after pop depth=%d view=%q focused=%v", r.Depth(), r.View(), base.focused)
	}
}

func TestForeignControlIsPassedOn(t *testing.T) {
	inner := &page{name: "inner"}
	r, _ := New(inner)
	_, other := New(&page{})

	r.Update(other.Change(&page{name: "x"})())
	if r.View() != "inner" {
		t.Fatal("message for another router changed this one")
	}
	r.Update(InitMsg{Control: other})
	if inner.control == other {
		t.Fatal("init message of another router leaked to the child")
	}
}
