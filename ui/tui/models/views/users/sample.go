// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package users

import (
	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/internal/record"
	"github.com/toeirei/dashui/ui/tui/models/components/datatable"
)

// SampleUsers returns fresh demo rows.
func SampleUsers() []*record.Map {
	return []*record.Map{
		user(1, "Alice Johnson", "alice@example.com", "Admin"),
		user(2, "Bob Smith", "bob@example.com", "User"),
		user(3, "Charlie Brown", "charlie@example.com", "Editor"),
		user(4, "Diana Prince", "diana@example.com", "Admin"),
		user(5, "Edward Davis", "edward@example.com", "User"),
		user(6, "Fiona Clark", "fiona@example.com", "Editor"),
	}
}

// SampleColumns sorts on id and name only.
func SampleColumns() []datatable.Column {
	return []datatable.Column{
		{Key: "id", Title: i18n.T("users.column_id"), Field: "id", Sortable: true},
		{Key: "name", Title: i18n.T("users.column_name"), Field: "name", Sortable: true},
		{Key: "email", Title: i18n.T("users.column_email"), Field: "email"},
		{Key: "role", Title: i18n.T("users.column_role"), Field: "role"},
	}
}

func user(id int, name, email, role string) *record.Map {
	return record.NewMap(map[string]any{
		"id":    id,
		"name":  name,
		"email": email,
		"role":  role,
	})
}
