// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the dashui command line with Cobra. It loads the
// configuration, sets up language and logging, and starts the TUI.
package cli
