// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package users

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/internal/record"
	"github.com/toeirei/dashui/ui/tui/models/components/datatable"
	"github.com/toeirei/dashui/ui/tui/models/components/fieldinput"
	"github.com/toeirei/dashui/ui/tui/theme"
)

// Loader fetches rows and their field names in first seen order.
type Loader func(ctx context.Context) ([]*record.Map, []string, error)

type NewOpt = func(m *Model)

func New(t theme.Theme, opts ...NewOpt) *Model {
	m := &Model{
		theme:     t,
		keyMap:    DefaultKeyMap(),
		columns:   SampleColumns(),
		all:       SampleUsers(),
		clipboard: clipboard.WriteAll,
		tableOpts: []datatable.NewOpt{
			datatable.WithSelectable(true),
			datatable.WithMultiSelect(true),
		},
		detail: viewport.New(0, 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.search = fieldinput.New(
		fieldinput.WithPlaceholder(i18n.T("users.search_placeholder")),
		fieldinput.WithVariant(fieldinput.Outlined),
		fieldinput.WithSize(fieldinput.Small),
		fieldinput.WithClearButton(),
		fieldinput.WithTheme(t),
		fieldinput.WithOnChange(m.applyFilter),
	)
	m.table = m.newTable()
	m.table.SetData(m.filtered())
	if m.loader != nil {
		m.table.SetLoading(true)
	}
	return m
}

// WithData replaces the sample rows. Nil columns are derived from fields.
func WithData(rows []*record.Map, fields []string, columns []datatable.Column) NewOpt {
	return func(m *Model) {
		m.all = rows
		m.columns = columns
		if m.columns == nil {
			m.columns = datatable.ColumnsFor(fields, true)
		}
	}
}

// WithLoader fetches rows in the background once the page is started.
func WithLoader(loader Loader) NewOpt {
	return func(m *Model) {
		m.loader = loader
		m.all = nil
	}
}

// WithTableOptions replaces the options every table of this page is
// created with.
func WithTableOptions(opts ...datatable.NewOpt) NewOpt {
	return func(m *Model) {
		m.tableOpts = opts
	}
}

// WithClipboard swaps the function used to copy the selection.
func WithClipboard(write func(string) error) NewOpt {
	return func(m *Model) {
		m.clipboard = write
	}
}
