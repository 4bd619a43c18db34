// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stories is a catalogue of the widgets in fixed configurations,
// each runnable on its own.
package stories

import (
	"slices"
	"strings"

	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
	"github.com/toeirei/dashui/util/slicest"
)

type Story struct {
	Component string
	Name      string
	Mode      theme.Mode
	build     func(t theme.Theme) (util.Model, func() string)
}

// ID is the name a story is looked up by, "Component/Name".
func (s Story) ID() string {
	return s.Component + "/" + s.Name
}

// Model builds a fresh model for the story in the story's theme.
func (s Story) Model() util.Model {
	t := theme.For(s.Mode)
	child, status := s.build(t)
	return newFrame(s.ID(), child, status, t)
}

var catalogue = slices.Concat(dataTableStories, inputFieldStories)

// All returns every story in catalogue order.
func All() []Story {
	return slices.Clone(catalogue)
}

// IDs returns the ids of all stories.
func IDs() []string {
	return slicest.Map(catalogue, Story.ID)
}

// Find looks a story up by id, ignoring case. A bare name is accepted when
// it is unique across components.
func Find(id string) (Story, bool) {
	if i := slices.IndexFunc(catalogue, func(s Story) bool {
		return strings.EqualFold(s.ID(), id)
	}); i >= 0 {
		return catalogue[i], true
	}

	matches := slicest.Filter(catalogue, func(s Story) bool {
		return strings.EqualFold(s.Name, id)
	})
	if len(matches) == 1 {
		return matches[0], true
	}
	return Story{}, false
}
