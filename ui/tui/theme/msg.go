// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package theme

import tea "github.com/charmbracelet/bubbletea"

// ChangedMsg is broadcast when the active palette changes.
type ChangedMsg struct {
	Theme Theme
}

func Set(t Theme) tea.Cmd {
	return func() tea.Msg { return ChangedMsg{Theme: t} }
}
