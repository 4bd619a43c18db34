// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import tea "github.com/charmbracelet/bubbletea"

// StatusMsg replaces the status line above the key help. An empty Text
// hides it.
type StatusMsg struct {
	Text  string
	Error bool
}

func SetStatus(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func SetError(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, Error: true} }
}
