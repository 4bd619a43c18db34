// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) *Form[T] {
	form := Form[T]{KeyMap: DefaultKeyMap(), Gap: 2}
	for _, opt := range opts {
		opt(&form)
	}
	form.activeIndex = form.nextFocusable(-1, 1)
	return &form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

func WithOnReset[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnReset = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

func WithKeyMap[T any](keyMap KeyMap) NewOpt[T] {
	return func(form *Form[T]) {
		form.KeyMap = keyMap
	}
}

func WithGap[T any](gap int) NewOpt[T] {
	return func(form *Form[T]) {
		form.Gap = gap
	}
}

// WithInput adds input on a new row. id is the key used when decoding the
// form into T.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		form.items = append(form.items, formItem{id: id, input: input})
		form.rows = append(form.rows, formRow{items: []int{len(form.items) - 1}})
	}
}

// WithInlineInput adds input to the right of the previous one.
func WithInlineInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		if len(form.rows) == 0 {
			WithInput[T](id, input)(form)
			return
		}
		form.items = append(form.items, formItem{id: id, input: input})
		row := &form.rows[len(form.rows)-1]
		row.items = append(row.items, len(form.items)-1)
	}
}
