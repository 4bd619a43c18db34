// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package fieldinput

import (
	"strings"

	"github.com/toeirei/dashui/ui/tui/theme"
)

type Variant string

const (
	Filled   Variant = "filled"
	Outlined Variant = "outlined"
	Ghost    Variant = "ghost"
)

type Size string

const (
	Small  Size = "sm"
	Medium Size = "md"
	Large  Size = "lg"
)

// Type changes how the value is presented. The field never validates its
// content; email and number only get their own prompt.
type Type string

const (
	Text     Type = "text"
	Password Type = "password"
	Email    Type = "email"
	Number   Type = "number"
)

func ParseVariant(s string) Variant {
	switch v := Variant(strings.ToLower(s)); v {
	case Filled, Outlined, Ghost:
		return v
	}
	return Outlined
}

func ParseSize(s string) Size {
	switch v := Size(strings.ToLower(s)); v {
	case Small, Medium, Large:
		return v
	}
	return Medium
}

func ParseType(s string) Type {
	switch v := Type(strings.ToLower(s)); v {
	case Text, Password, Email, Number:
		return v
	}
	return Text
}

func (t Type) prompt() string {
	switch t {
	case Password:
		return "* "
	case Email:
		return "@ "
	case Number:
		return "# "
	default:
		return "› "
	}
}

type NewOpt = func(m *Model)

func WithValue(value string) NewOpt {
	return func(m *Model) {
		m.SetValue(value)
	}
}

func WithOnChange(fn func(value string)) NewOpt {
	return func(m *Model) {
		m.OnChange = fn
	}
}

func WithLabel(label string) NewOpt {
	return func(m *Model) {
		m.Label = label
	}
}

func WithPlaceholder(placeholder string) NewOpt {
	return func(m *Model) {
		m.Placeholder = placeholder
	}
}

func WithHelperText(text string) NewOpt {
	return func(m *Model) {
		m.HelperText = text
	}
}

// WithError marks the field invalid and sets the message shown instead of
// the helper text.
func WithError(message string) NewOpt {
	return func(m *Model) {
		m.Invalid = true
		m.ErrorMessage = message
	}
}

func WithInvalid(invalid bool) NewOpt {
	return func(m *Model) {
		m.Invalid = invalid
	}
}

func WithDisabled(disabled bool) NewOpt {
	return func(m *Model) {
		m.Disabled = disabled
	}
}

func WithLoading(loading bool) NewOpt {
	return func(m *Model) {
		m.loading = loading
	}
}

func WithVariant(v Variant) NewOpt {
	return func(m *Model) {
		m.Variant = v
	}
}

func WithSize(s Size) NewOpt {
	return func(m *Model) {
		m.Size = s
	}
}

func WithType(t Type) NewOpt {
	return func(m *Model) {
		m.Type = t
	}
}

func WithClearButton() NewOpt {
	return func(m *Model) {
		m.ShowClearButton = true
	}
}

func WithPasswordToggle() NewOpt {
	return func(m *Model) {
		m.ShowPasswordToggle = true
	}
}

func WithTheme(t theme.Theme) NewOpt {
	return func(m *Model) {
		m.Theme = t
	}
}

func WithWidth(width int) NewOpt {
	return func(m *Model) {
		m.width = width
	}
}

func WithKeyMap(km KeyMap) NewOpt {
	return func(m *Model) {
		m.keyMap = km
	}
}
