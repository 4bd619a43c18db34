// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import tea "github.com/charmbracelet/bubbletea"

// Size is the last window size a model was given.
type Size struct {
	Width  int
	Height int
}

// Update stores the size carried by a tea.WindowSizeMsg and reports whether
// msg was one.
func (s *Size) Update(msg tea.Msg) bool {
	wsm, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return false
	}
	*s = Size{Width: wsm.Width, Height: wsm.Height}
	return true
}

// Shrink returns the size left after taking away dw columns and dh lines,
// never below zero.
func (s Size) Shrink(dw, dh int) Size {
	return Size{Width: max(s.Width-dw, 0), Height: max(s.Height-dh, 0)}
}

// ToMsg replays the size, e.g. to re-layout children.
func (s Size) ToMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: s.Width, Height: s.Height}
}
