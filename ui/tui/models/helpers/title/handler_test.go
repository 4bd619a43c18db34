// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandler(t *testing.T) {
	t.Parallel()
	h := NewHandler("dashui", " | ")
	if h.Title() != "dashui" {
		t.Fatalf("Title() = %q", h.Title())
	}

	msg := Set("Data Table")()
	if !IsTitleMsg(msg) {
		t.Fatal("Set should produce a title message")
	}
	if cmd := h.Handle(msg); cmd == nil {
		t.Fatal("changed title should return a command")
	}
	if h.Title() != "dashui | Data Table" {
		t.Fatalf("Title() = %q", h.Title())
	}
	if cmd := h.Handle(msg); cmd != nil {
		t.Fatal("unchanged title should not return a command")
	}
	if cmd := h.Handle(tea.KeyMsg{}); cmd != nil {
		t.Fatal("foreign message should be ignored")
	}
}
