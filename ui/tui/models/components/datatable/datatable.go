// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package datatable renders records as a sortable table with optional
// single or multi row selection.
package datatable

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dashui/internal/logging"
	"github.com/toeirei/dashui/internal/record"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
)

type Model[T record.Record] struct {
	// OnRowSelect receives a copy of the selection after every toggle.
	OnRowSelect func(selected []T)
	// RowKey, when set, decides row identity for selection instead of
	// comparing the records themselves.
	RowKey func(row T) string

	columns  []Column
	data     []T
	order    []T
	sort     SortState
	selected []T

	loading     bool
	selectable  bool
	multiSelect bool
	height      int
	theme       theme.Theme
	comparer    *record.Comparer
	keyMap      KeyMap

	activeColumn int
	focused      bool
	origin       origin
	size         util.Size
	table        table.Model
	tableColumns []table.Column
	spinner      spinner.Model
}

type origin struct{ x, y int }

func (m *Model[T]) Init() tea.Cmd {
	if m.loading {
		return m.spinner.Tick
	}
	return nil
}

func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.resize()
		return nil
	}

	switch msg := msg.(type) {
	case theme.ChangedMsg:
		m.SetTheme(msg.Theme)
		return nil
	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if !m.focused || m.loading || len(m.data) == 0 {
			return nil
		}
		switch {
		case key.Matches(msg, m.keyMap.PrevColumn):
			m.moveActiveColumn(-1)
			return nil
		case key.Matches(msg, m.keyMap.NextColumn):
			m.moveActiveColumn(1)
			return nil
		case key.Matches(msg, m.keyMap.Sort):
			m.ActivateHeader(m.activeColumn)
			return nil
		case key.Matches(msg, m.keyMap.Toggle):
			m.ToggleRow(m.table.Cursor())
			return nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model[T]) View() string {
	return m.render()
}

func (m *Model[T]) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	m.table.Focus()
	m.refresh()
	return nil, m.keyMap
}

func (m *Model[T]) Blur() {
	m.focused = false
	m.table.Blur()
	m.refresh()
}

// *Model implements util.Model
var _ util.Model = (*Model[*record.Map])(nil)

// SetData replaces the records. The active sort is applied to the new rows
// and the selection is kept as is.
func (m *Model[T]) SetData(data []T) {
	m.data = slices.Clone(data)
	m.order = m.sorted(m.data)
	m.refresh()
}

func (m *Model[T]) SetColumns(columns []Column) {
	m.columns = slices.Clone(columns)
	m.activeColumn = util.Clamp(0, m.activeColumn, max(len(m.columns)-1, 0))
	m.refresh()
}

// SetLoading switches the loading indicator and returns the command that
// drives the spinner.
func (m *Model[T]) SetLoading(loading bool) tea.Cmd {
	m.loading = loading
	if loading {
		return m.spinner.Tick
	}
	return nil
}

func (m *Model[T]) SetTheme(t theme.Theme) {
	m.theme = t
	m.applyTheme()
}

// SetOrigin tells the table where its top left corner sits on screen so
// mouse clicks on the header row can be mapped to columns.
func (m *Model[T]) SetOrigin(x, y int) {
	m.origin = origin{x: x, y: y}
}

// Rows returns the records in display order.
func (m *Model[T]) Rows() []T {
	return slices.Clone(m.order)
}

func (m *Model[T]) Data() []T {
	return slices.Clone(m.data)
}

func (m *Model[T]) Columns() []Column {
	return slices.Clone(m.columns)
}

// Selected returns the selection in the order rows were selected.
func (m *Model[T]) Selected() []T {
	return slices.Clone(m.selected)
}

func (m *Model[T]) IsSelected(row T) bool {
	return m.indexOfSelected(row) >= 0
}

func (m *Model[T]) SortState() SortState {
	return m.sort
}

func (m *Model[T]) Loading() bool     { return m.loading }
func (m *Model[T]) Selectable() bool  { return m.selectable }
func (m *Model[T]) MultiSelect() bool { return m.multiSelect }
func (m *Model[T]) Focused() bool     { return m.focused }
func (m *Model[T]) Cursor() int       { return m.table.Cursor() }
func (m *Model[T]) ActiveColumn() int { return m.activeColumn }

func (m *Model[T]) SetCursor(i int) {
	m.table.SetCursor(i)
}

func (m *Model[T]) moveActiveColumn(delta int) {
	if len(m.columns) == 0 {
		return
	}
	m.activeColumn = util.Wrap(m.activeColumn, delta, len(m.columns))
	m.refresh()
}

func (m *Model[T]) resize() {
	m.table.SetWidth(m.size.Width)
	if m.height == 0 {
		m.table.SetHeight(m.size.Height)
	}
}

// logRows is a debug helper that keeps the log line short for big tables.
func (m *Model[T]) logRows(event string) {
	logging.Debugf("datatable: %s (rows=%d selected=%d sort=%q %s)",
		event, len(m.order), len(m.selected), m.sort.Field, m.sort.Direction)
}
