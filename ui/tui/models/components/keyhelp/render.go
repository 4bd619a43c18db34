// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key bindings of the focused component.
//
// The views replace help.Model's own ShortHelpView and FullHelpView: they
// measure the separator together with the item it precedes, and they drop
// bindings whose key already appeared, which happens once key maps of
// nested components are merged.
package keyhelp

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// visible returns the enabled bindings of group whose help key was not in
// seen yet, and records them in seen.
func visible(group []key.Binding, seen map[string]bool) []key.Binding {
	var out []key.Binding
	for _, b := range group {
		k := b.Help().Key
		if !b.Enabled() || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, b)
	}
	return out
}

// fit keeps the leading parts that fit into width. When something had to
// be dropped the ellipsis takes its place, if there is room for it. A zero
// width means unlimited.
func fit(m help.Model, parts []string) []string {
	if m.Width <= 0 {
		return parts
	}
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	used := 0
	for i, p := range parts {
		w := lipgloss.Width(p)
		last := i == len(parts)-1
		if (last && used+w <= m.Width) || used+w+lipgloss.Width(tail) <= m.Width {
			used += w
			continue
		}
		if used+lipgloss.Width(tail) <= m.Width {
			return append(parts[:i:i], tail)
		}
		return parts[:i:i]
	}
	return parts
}

// ShortHelpView renders bindings on one line, separated by the short
// separator.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	sep := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	var parts []string
	for i, b := range visible(bindings, map[string]bool{}) {
		item := m.Styles.ShortKey.Inline(true).Render(b.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(b.Help().Desc)
		if i > 0 {
			item = sep + item
		}
		parts = append(parts, item)
	}
	return strings.Join(fit(m, parts), "")
}

// FullHelpView renders one column per group. Groups without a visible
// binding are left out.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	sep := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)
	seen := map[string]bool{}
	var cols []string
	for _, group := range groups {
		bindings := visible(group, seen)
		if len(bindings) == 0 {
			continue
		}
		keys := make([]string, len(bindings))
		descs := make([]string, len(bindings))
		for i, b := range bindings {
			keys[i], descs[i] = b.Help().Key, b.Help().Desc
		}
		col := lipgloss.JoinHorizontal(lipgloss.Top,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descs...)),
		)
		if len(cols) > 0 {
			col = lipgloss.JoinHorizontal(lipgloss.Top, sep, col)
		}
		cols = append(cols, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, cols)...)
}
