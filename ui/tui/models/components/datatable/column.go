// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package datatable

import (
	"strings"

	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/util/slicest"
	"golang.org/x/text/cases"
)

// Column describes how one field of a record is rendered. Field names a
// record attribute; a field the record does not have renders as a blank
// cell. Width 0 sizes the column to its content.
type Column struct {
	Key      string
	Title    string
	Field    string
	Sortable bool
	Width    int
}

// ColumnsFor builds one column per field, titled after the field name.
func ColumnsFor(fields []string, sortable bool) []Column {
	title := cases.Title(i18n.Tag())
	return slicest.Map(fields, func(field string) Column {
		return Column{
			Key:      field,
			Title:    title.String(strings.NewReplacer("_", " ", "-", " ").Replace(field)),
			Field:    field,
			Sortable: sortable,
		}
	})
}

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return i18n.T("table.sort_descending")
	}
	return i18n.T("table.sort_ascending")
}

func (d Direction) flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) arrow() string {
	if d == Descending {
		return "▼"
	}
	return "▲"
}

// SortState is the active sort. The zero value means no field is active
// and rows keep the order they were supplied in.
type SortState struct {
	Field     string
	Direction Direction
}

func (s SortState) Active() bool {
	return s.Field != ""
}
