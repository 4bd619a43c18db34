// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package datatable

import (
	"slices"
)

// ToggleRow toggles the selection of the row at display index i.
func (m *Model[T]) ToggleRow(i int) {
	if i < 0 || i >= len(m.order) {
		return
	}
	m.ToggleRecord(m.order[i])
}

// ToggleRecord adds row to the selection or removes it when it is already
// selected. In single select mode a new row replaces the selection.
// OnRowSelect is called with a copy of the result. Tables that are not
// selectable ignore the call.
func (m *Model[T]) ToggleRecord(row T) {
	if !m.selectable {
		return
	}

	if i := m.indexOfSelected(row); i >= 0 {
		m.selected = slices.Delete(slices.Clone(m.selected), i, i+1)
	} else if m.multiSelect {
		m.selected = append(slices.Clone(m.selected), row)
	} else {
		m.selected = []T{row}
	}

	m.refresh()
	m.logRows("toggle")
	if m.OnRowSelect != nil {
		m.OnRowSelect(slices.Clone(m.selected))
	}
}

func (m *Model[T]) indexOfSelected(row T) int {
	return slices.IndexFunc(m.selected, func(s T) bool {
		return m.sameRow(s, row)
	})
}

func (m *Model[T]) sameRow(a, b T) bool {
	if m.RowKey != nil {
		return m.RowKey(a) == m.RowKey(b)
	}
	return a == b
}
