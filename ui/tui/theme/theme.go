// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package theme holds the light and dark palettes shared by all widgets.
// Colors are ANSI 256 codes so they render the same on most terminals.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode maps a config value to a Mode. Anything but "dark" is Light.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(Dark)) {
		return Dark
	}
	return Light
}

func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

type Theme struct {
	Mode Mode

	// Text colors.
	Text  lipgloss.Color
	Faint lipgloss.Color

	// Accents.
	Accent  lipgloss.Color
	Special lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color

	// Chrome.
	Border        lipgloss.Color
	FocusBorder   lipgloss.Color
	Surface       lipgloss.Color
	HeaderSurface lipgloss.Color

	// Table rows.
	CursorBackground   lipgloss.Color
	CursorForeground   lipgloss.Color
	SelectedForeground lipgloss.Color

	// Disabled controls.
	DisabledText    lipgloss.Color
	DisabledSurface lipgloss.Color
}

var LightTheme = Theme{
	Mode:  Light,
	Text:  lipgloss.Color("235"),
	Faint: lipgloss.Color("240"),

	Accent:  lipgloss.Color("33"),
	Special: lipgloss.Color("208"),
	Error:   lipgloss.Color("196"),
	Success: lipgloss.Color("28"),

	Border:        lipgloss.Color("250"),
	FocusBorder:   lipgloss.Color("33"),
	Surface:       lipgloss.Color("255"),
	HeaderSurface: lipgloss.Color("254"),

	CursorBackground:   lipgloss.Color("153"),
	CursorForeground:   lipgloss.Color("235"),
	SelectedForeground: lipgloss.Color("25"),

	DisabledText:    lipgloss.Color("244"),
	DisabledSurface: lipgloss.Color("252"),
}

var DarkTheme = Theme{
	Mode:  Dark,
	Text:  lipgloss.Color("231"),
	Faint: lipgloss.Color("245"),

	Accent:  lipgloss.Color("81"),
	Special: lipgloss.Color("208"),
	Error:   lipgloss.Color("196"),
	Success: lipgloss.Color("40"),

	Border:        lipgloss.Color("240"),
	FocusBorder:   lipgloss.Color("81"),
	Surface:       lipgloss.Color("236"),
	HeaderSurface: lipgloss.Color("237"),

	CursorBackground:   lipgloss.Color("24"),
	CursorForeground:   lipgloss.Color("231"),
	SelectedForeground: lipgloss.Color("117"),

	DisabledText:    lipgloss.Color("243"),
	DisabledSurface: lipgloss.Color("238"),
}

// For returns the palette for mode.
func For(mode Mode) Theme {
	if mode == Dark {
		return DarkTheme
	}
	return LightTheme
}

func (t Theme) TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

func (t Theme) FaintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Faint)
}

func (t Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}

func (t Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}
