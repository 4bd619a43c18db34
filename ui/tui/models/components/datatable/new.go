// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package datatable

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/toeirei/dashui/internal/record"
	"github.com/toeirei/dashui/ui/tui/theme"
)

// settings holds the options that do not depend on the record type.
type settings struct {
	loading     bool
	selectable  bool
	multiSelect bool
	height      int
	theme       theme.Theme
	comparer    *record.Comparer
	keyMap      *KeyMap
}

type NewOpt = func(s *settings)

// New creates a table over data. The slice is copied; it is never
// reordered or written to. Multi select is on by default.
func New[T record.Record](columns []Column, data []T, opts ...NewOpt) *Model[T] {
	s := settings{
		multiSelect: true,
		theme:       theme.LightTheme,
	}
	for _, opt := range opts {
		opt(&s)
	}

	keyMap := DefaultKeyMap()
	if s.keyMap != nil {
		keyMap = *s.keyMap
	}
	keyMap.Toggle.SetEnabled(s.selectable)

	m := &Model[T]{
		loading:     s.loading,
		selectable:  s.selectable,
		multiSelect: s.multiSelect,
		height:      s.height,
		theme:       s.theme,
		comparer:    s.comparer,
		keyMap:      keyMap,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		table:       table.New(),
	}
	m.table.KeyMap = keyMap.Table
	m.columns = append([]Column(nil), columns...)
	m.SetData(data)
	m.applyTheme()
	if s.height > 0 {
		m.table.SetHeight(s.height)
	}
	return m
}

func WithLoading(loading bool) NewOpt {
	return func(s *settings) {
		s.loading = loading
	}
}

func WithSelectable(selectable bool) NewOpt {
	return func(s *settings) {
		s.selectable = selectable
	}
}

func WithMultiSelect(multiSelect bool) NewOpt {
	return func(s *settings) {
		s.multiSelect = multiSelect
	}
}

// WithHeight fixes the rendered height. Without it the table takes the
// height of the last window size message.
func WithHeight(height int) NewOpt {
	return func(s *settings) {
		s.height = height
	}
}

func WithTheme(t theme.Theme) NewOpt {
	return func(s *settings) {
		s.theme = t
	}
}

// WithComparer sets the value ordering used for sorting, for example a
// language aware string collation.
func WithComparer(c *record.Comparer) NewOpt {
	return func(s *settings) {
		s.comparer = c
	}
}

func WithKeyMap(km KeyMap) NewOpt {
	return func(s *settings) {
		s.keyMap = &km
	}
}
