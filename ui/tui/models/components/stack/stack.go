// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stack lays out models next to or below each other and splits
// the available space between them.
package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dashui/ui/tui/util"
	"github.com/toeirei/dashui/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int
	MsgFilters  []MsgFilter

	items         []Item
	size          util.Size
	focussedIndex Focus
}

type Item struct {
	Model      util.Model
	SizeConfig SizeConfig
	MsgFilters []MsgFilter
	size       int
	oldSize    int
}

func (s Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return item.Model.Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if s.size.Update(msg) {
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(true)...)
	} else {
		cmds = append(cmds, slicest.Map(s.items, func(item Item) tea.Cmd {
			// apply message filters
			itemMsg := applyMessageFilters(item.Model, msg, item.MsgFilters)
			itemMsg = applyMessageFilters(item.Model, itemMsg, s.MsgFilters)
			if itemMsg == nil {
				return nil
			}
			return item.Model.Update(itemMsg)
		})...)

		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(false)...)
	}

	return tea.Batch(cmds...)
}

func (s Model) View() string {
	// prepare based on orientation
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	var rendered []string
	for i, item := range s.items {
		if item.size == 0 {
			continue
		}
		// no gap on first item
		margin := s.Gap * min(i, 1)
		rendered = append(rendered, styler(item.size, margin).Render(item.Model.View()))
	}
	return joiner(s.Align, rendered...)
}

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(s.items) == 0 {
		return nil, nil
	}
	if s.focussedIndex == FocusAll() {
		cmds := make([]tea.Cmd, len(s.items))
		keyMaps := make([]help.KeyMap, len(s.items))

		for i, item := range s.items {
			cmds[i], keyMaps[i] = item.Model.Focus()
		}

		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return s.items[s.focussedIndex].Model.Focus()
}

func (s *Model) Blur() {
	if len(s.items) == 0 {
		return
	}
	if s.focussedIndex == FocusAll() {
		for _, item := range s.items {
			item.Model.Blur()
		}
		return
	}
	s.items[s.focussedIndex].Model.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

func (s *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	s.Blur()
	s.focussedIndex = util.Clamp(FocusAll(), focus, Focus(len(s.items)-1))
	return s.Focus()
}

// Offset returns how many cells item i is shifted from the stack origin
// along the stack's orientation.
func (s *Model) Offset(i int) int {
	offset := s.Gap * min(i, 1)
	for j, item := range s.items[:util.Clamp(0, i, len(s.items))] {
		if item.size == 0 {
			continue
		}
		offset += item.size + s.Gap*min(j, 1)
	}
	return offset
}

// Size returns the size the stack was last given.
func (s *Model) Size() util.Size {
	return s.size
}
