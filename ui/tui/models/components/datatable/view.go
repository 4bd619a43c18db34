// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package datatable

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/internal/record"
	"github.com/toeirei/dashui/util/slicest"
)

const (
	checkboxOn  = "[x]"
	checkboxOff = "[ ]"

	// horizontal padding of the default cell styles
	cellPadding  = 2
	maxAutoWidth = 32
	// header line plus its bottom border
	headerHeight = 2
)

func (m *Model[T]) render() string {
	switch {
	case m.loading:
		return m.notice(m.spinner.View() + " " + i18n.T("table.loading"))
	case len(m.data) == 0:
		return m.notice(i18n.T("table.empty"))
	default:
		return m.table.View()
	}
}

func (m *Model[T]) notice(text string) string {
	return lipgloss.NewStyle().
		Foreground(m.theme.Faint).
		Padding(1, 2).
		Width(m.size.Width).
		Align(lipgloss.Center).
		Render(text)
}

// cellText is the plain text of one cell. Missing fields are blank.
func (m *Model[T]) cellText(row T, field string) string {
	v, ok := row.Field(field)
	if !ok {
		return ""
	}
	return record.Format(v)
}

func (m *Model[T]) headerTitle(i int) string {
	col := m.columns[i]
	title := col.Title
	if m.focused && i == m.activeColumn {
		title = "›" + title
	}
	if col.Sortable && m.sort.Active() && m.sort.Field == col.Field {
		title += " " + m.sort.Direction.arrow()
	}
	return title
}

// refresh rebuilds the bubbles table from the current columns, order and
// selection.
func (m *Model[T]) refresh() {
	var cols []table.Column
	if m.selectable {
		cols = append(cols, table.Column{Title: "", Width: lipgloss.Width(checkboxOff)})
	}
	cols = append(cols, slicest.MapI(m.columns, func(i int, c Column) table.Column {
		title := m.headerTitle(i)
		width := c.Width
		if width <= 0 {
			width = m.autoWidth(c, title)
		}
		return table.Column{Title: title, Width: width}
	})...)

	// bubbles/table renders the old rows against the new columns, so
	// drop them before swapping columns
	cursor := m.table.Cursor()
	m.tableColumns = cols
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(m.tableRows())
	m.table.SetCursor(cursor)
}

func (m *Model[T]) tableRows() []table.Row {
	return slicest.Map(m.order, func(row T) table.Row {
		cells := make(table.Row, 0, len(m.columns)+1)
		if m.selectable {
			if m.IsSelected(row) {
				cells = append(cells, checkboxOn)
			} else {
				cells = append(cells, checkboxOff)
			}
		}
		for _, c := range m.columns {
			cells = append(cells, m.cellText(row, c.Field))
		}
		return cells
	})
}

func (m *Model[T]) autoWidth(c Column, title string) int {
	// room for the focus marker and the sort arrow so the width is stable
	width := lipgloss.Width(c.Title) + 3
	width = max(width, lipgloss.Width(title))
	for _, row := range m.order {
		width = max(width, lipgloss.Width(m.cellText(row, c.Field)))
	}
	return min(width, maxAutoWidth)
}

func (m *Model[T]) applyTheme() {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(m.theme.Text).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Cell = styles.Cell.Foreground(m.theme.Text)
	styles.Selected = styles.Selected.
		Foreground(m.theme.CursorForeground).
		Background(m.theme.CursorBackground).
		Bold(false)
	m.table.SetStyles(styles)
}

// columnAt maps an x offset inside the table to an index into m.columns.
// It returns -1 for the checkbox column and for positions past the last
// column.
func (m *Model[T]) columnAt(x int) int {
	if x < 0 {
		return -1
	}
	pos := 0
	for i, c := range m.tableColumns {
		pos += c.Width + cellPadding
		if x < pos {
			if m.selectable {
				return i - 1
			}
			return i
		}
	}
	return -1
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.loading || len(m.data) == 0 {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	x, y := msg.X-m.origin.x, msg.Y-m.origin.y
	switch {
	case y == 0:
		if i := m.columnAt(x); i >= 0 {
			m.ActivateHeader(i)
		}
	case y >= headerHeight && m.selectable:
		// the body scrolls internally, so rows can only be hit while all
		// of them are visible
		row := y - headerHeight
		if len(m.order) > m.table.Height() || row >= len(m.order) {
			return nil
		}
		if x >= 0 && x < lipgloss.Width(checkboxOff)+cellPadding {
			m.SetCursor(row)
			m.ToggleRow(row)
		}
	}
	return nil
}
