// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form arranges inputs in rows, moves focus between them and
// decodes their values into a struct.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/dashui/ui/tui/util"
	"github.com/toeirei/dashui/util/slicest"
)

type FormInput interface {
	util.Focusable
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Reset()
	Set(any)
	Get() any
	View(width int) string
}

// Skipper is implemented by inputs that may refuse focus, like disabled
// fields.
type Skipper interface {
	Skip() bool
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	OnReset          func() tea.Cmd
	ResetAfterSubmit bool
	KeyMap           KeyMap
	Gap              int

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	size        util.Size
}

func (f *Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f *Form[T]) Update(msg tea.Msg) tea.Cmd {
	// handle size updates
	if f.size.Update(msg) || len(f.items) == 0 {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !f.focused {
			return nil
		}
		switch {
		case key.Matches(msg, f.KeyMap.Next):
			return f.changeActiveIndex(1)
		case key.Matches(msg, f.KeyMap.Prev):
			return f.changeActiveIndex(-1)
		case key.Matches(msg, f.KeyMap.Submit):
			return f.Submit()
		case key.Matches(msg, f.KeyMap.Reset):
			return f.runReset()
		}
		// pass keys to active input
		return f.updateActiveInput(msg)
	case tea.MouseMsg:
		return nil
	}

	// everything else (spinner ticks, theme changes) reaches all inputs
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		cmd, _ := item.input.Update(msg)
		return cmd
	})...)
}

func (f *Form[T]) View() string {
	width := f.size.Width
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, func(row formRow) string {
			itemWidth := (width - f.Gap*(len(row.items)-1)) / len(row.items)
			views := make([]string, 0, len(row.items)*2)
			for i, itemIndex := range row.items {
				if i > 0 {
					views = append(views, lipgloss.NewStyle().Width(f.Gap).Render(""))
				}
				views = append(views, f.items[itemIndex].input.View(itemWidth))
			}
			return lipgloss.JoinHorizontal(lipgloss.Top, views...)
		})...,
	)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	if len(f.items) == 0 {
		return nil, f.KeyMap
	}
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return cmd, util.MergeKeyMaps(keyMap, f.KeyMap)
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Model
var _ util.Model = (*Form[any])(nil)

// Reset clears every input and moves focus back to the first one.
func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	return f.setActiveIndex(f.nextFocusable(-1, 1))
}

func (f *Form[T]) Submit() tea.Cmd {
	var resetCmd, submitCmd tea.Cmd
	data, err := f.Get()
	if f.OnSubmit != nil {
		submitCmd = f.OnSubmit(data, err)
	}
	if f.ResetAfterSubmit && err == nil {
		resetCmd = f.Reset()
	}
	return tea.Batch(submitCmd, resetCmd)
}

// ActiveID returns the id of the input holding focus.
func (f *Form[T]) ActiveID() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

// Input returns the input registered under id.
func (f *Form[T]) Input(id string) (FormInput, bool) {
	for _, item := range f.items {
		if item.id == id {
			return item.input, true
		}
	}
	return nil, false
}

func (f *Form[T]) runReset() tea.Cmd {
	cmd := f.Reset()
	if f.OnReset != nil {
		return tea.Batch(cmd, f.OnReset())
	}
	return cmd
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var (
		updateCmd tea.Cmd
		actionCmd tea.Cmd
		action    Action
	)

	updateCmd, action = f.items[f.activeIndex].input.Update(msg)

	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionReset:
		actionCmd = f.runReset()
	case ActionCancel:
		if f.OnCancel != nil {
			actionCmd = f.OnCancel()
		}
	}

	return tea.Batch(updateCmd, actionCmd)
}

func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	return f.setActiveIndex(f.nextFocusable(f.activeIndex, delta))
}

func (f *Form[T]) setActiveIndex(index int) tea.Cmd {
	if !f.focused {
		f.activeIndex = index
		return nil
	}
	f.items[f.activeIndex].input.Blur()
	f.activeIndex = index
	cmd, keyMap := f.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

// nextFocusable walks from index in steps of delta, wrapping around, and
// returns the first input that accepts focus. It falls back to index when
// none does.
func (f *Form[T]) nextFocusable(index, delta int) int {
	n := len(f.items)
	if n == 0 {
		return 0
	}
	i := index
	for range n {
		i = util.Wrap(i, delta, n)
		if s, ok := f.items[i].input.(Skipper); !ok || !s.Skip() {
			return i
		}
	}
	return util.Clamp(0, index, n-1)
}

func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if value := item.input.Get(); value != nil {
			values[item.id] = value
		}
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
