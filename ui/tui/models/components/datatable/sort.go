// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package datatable

import (
	"slices"
)

// ActivateHeader is a click on the header of column i. A sortable column
// that is not the active sort becomes the active sort ascending, clicking
// the active column again flips the direction. Other columns are ignored.
func (m *Model[T]) ActivateHeader(i int) {
	if i < 0 || i >= len(m.columns) {
		return
	}
	col := m.columns[i]
	if !col.Sortable || col.Field == "" {
		return
	}

	if m.sort.Field == col.Field {
		m.sort.Direction = m.sort.Direction.flip()
	} else {
		m.sort = SortState{Field: col.Field, Direction: Ascending}
	}
	m.activeColumn = i

	cursor := m.table.Cursor()
	var current T
	hasCurrent := cursor >= 0 && cursor < len(m.order)
	if hasCurrent {
		current = m.order[cursor]
	}

	// sort what is on screen so ties keep their previous relative order
	m.order = m.sorted(m.order)
	m.refresh()
	if hasCurrent {
		// keep the cursor on the row it was on
		m.table.SetCursor(slices.IndexFunc(m.order, func(row T) bool {
			return m.sameRow(row, current)
		}))
	}
	m.logRows("sort")
}

// SortBy activates the first column showing field.
func (m *Model[T]) SortBy(field string) {
	m.ActivateHeader(slices.IndexFunc(m.columns, func(c Column) bool {
		return c.Field == field
	}))
}

// sorted returns a sorted copy of rows. Equal rows keep their order.
func (m *Model[T]) sorted(rows []T) []T {
	out := slices.Clone(rows)
	if !m.sort.Active() {
		return out
	}

	field, desc := m.sort.Field, m.sort.Direction == Descending
	slices.SortStableFunc(out, func(a, b T) int {
		va, _ := a.Field(field)
		vb, _ := b.Field(field)
		c := m.comparer.Compare(va, vb)
		if desc {
			return -c
		}
		return c
	})
	return out
}
