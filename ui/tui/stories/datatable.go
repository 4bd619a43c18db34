// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package stories

import (
	"slices"
	"strings"

	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/internal/record"
	"github.com/toeirei/dashui/ui/tui/models/components/datatable"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
	"github.com/toeirei/dashui/util/slicest"
)

var dataTableStories = []Story{
	tableStory("Default", theme.Light, sampleUsers),
	tableStory("Selectable", theme.Light, sampleUsers, datatable.WithSelectable(true)),
	tableStory("SingleSelect", theme.Light, sampleUsers,
		datatable.WithSelectable(true),
		datatable.WithMultiSelect(false),
	),
	tableStory("Loading", theme.Light, sampleUsers, datatable.WithLoading(true)),
	tableStory("Empty", theme.Light, noUsers),
	tableStory("DarkModeDefault", theme.Dark, sampleUsers),
	tableStory("DarkModeSelectable", theme.Dark, sampleUsers, datatable.WithSelectable(true)),
	tableStory("DarkModeEmpty", theme.Dark, noUsers),
	tableStory("DarkModeLoading", theme.Dark, sampleUsers, datatable.WithLoading(true)),
}

func sampleUsers() []*record.Map {
	return []*record.Map{
		user(1, "Alice", "alice@example.com", "Admin"),
		user(2, "Bob", "bob@example.com", "User"),
		user(3, "Charlie", "charlie@example.com", "Editor"),
	}
}

func noUsers() []*record.Map {
	return nil
}

func user(id int, name, email, role string) *record.Map {
	return record.NewMap(map[string]any{
		"id":    id,
		"name":  name,
		"email": email,
		"role":  role,
	})
}

func userColumns() []datatable.Column {
	return []datatable.Column{
		{Key: "id", Title: "ID", Field: "id", Sortable: true},
		{Key: "name", Title: "Name", Field: "name", Sortable: true},
		{Key: "email", Title: "Email", Field: "email"},
		{Key: "role", Title: "Role", Field: "role"},
	}
}

func tableStory(name string, mode theme.Mode, data func() []*record.Map, opts ...datatable.NewOpt) Story {
	return Story{
		Component: "DataTable",
		Name:      name,
		Mode:      mode,
		build: func(t theme.Theme) (util.Model, func() string) {
			var selected []*record.Map
			table := datatable.New(userColumns(), data(), slices.Concat(opts, []datatable.NewOpt{datatable.WithTheme(t)})...)
			table.OnRowSelect = func(rows []*record.Map) {
				selected = rows
			}

			status := func() string {
				if !table.Selectable() {
					return ""
				}
				names := slicest.Map(selected, func(row *record.Map) string {
					v, _ := row.Field("name")
					return record.Format(v)
				})
				return i18n.T("stories.selected", strings.Join(names, ", "))
			}
			return table, status
		},
	}
}
