// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the terminal UI. Widgets live in models/components,
// the demo pages in models/views and the widget catalogue in stories.
package tui
