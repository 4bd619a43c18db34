// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package users is the "Data Table" page of the demo: a searchable,
// selectable user table with a JSON dump of the selection.
package users

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/internal/logging"
	"github.com/toeirei/dashui/internal/record"
	"github.com/toeirei/dashui/ui/tui/models/components/datatable"
	"github.com/toeirei/dashui/ui/tui/models/components/fieldinput"
	"github.com/toeirei/dashui/ui/tui/models/views/footer"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
	"github.com/toeirei/dashui/util/slicest"
	"golang.org/x/text/cases"
)

const (
	loadTimeout     = 30 * time.Second
	headingHeight   = 2
	maxDetailHeight = 8
	focusSearch     = 0
	focusTable      = 1
)

type loadedMsg struct {
	rows   []*record.Map
	fields []string
	err    error
}

type Model struct {
	search    *fieldinput.Model
	table     *datatable.Model[*record.Map]
	detail    viewport.Model
	all       []*record.Map
	columns   []datatable.Column
	selected  []*record.Map
	tableOpts []datatable.NewOpt
	loader    Loader
	clipboard func(string) error

	loadStarted bool

	keyMap  KeyMap
	theme   theme.Theme
	size    util.Size
	focus   int
	focused bool
	// terminal cell of the top left corner, used for mouse hits
	originX, originY int
}

// Init starts the loader, once. The router calls Init every time the page
// is shown again.
func (m *Model) Init() tea.Cmd {
	if m.loader == nil || m.loadStarted {
		return nil
	}
	m.loadStarted = true
	loader := m.loader
	return tea.Batch(
		m.table.SetLoading(true),
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
			defer cancel()
			rows, fields, err := loader(ctx)
			return loadedMsg{rows: rows, fields: fields, err: err}
		},
	)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.layout()
		return nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case loadedMsg:
		cmd = m.loaded(msg)
	case theme.ChangedMsg:
		m.theme = msg.Theme
		cmd = tea.Batch(m.search.Update(msg), m.table.Update(msg))
	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		var detailCmd tea.Cmd
		if len(m.selected) > 0 && msg.Button != tea.MouseButtonLeft {
			// wheel scrolls the selection dump
			m.detail, detailCmd = m.detail.Update(msg)
		}
		cmd = tea.Batch(m.table.Update(msg), detailCmd)
	default:
		// spinner ticks
		cmd = tea.Batch(m.search.Update(msg), m.table.Update(msg))
	}
	m.layout()
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keyMap.Focus):
		return m.toggleFocus()
	case key.Matches(msg, m.keyMap.Copy):
		return m.copySelection()
	case key.Matches(msg, m.keyMap.ClearSelection):
		return m.clearSelection()
	}

	if m.focus == focusSearch {
		return m.search.Update(msg)
	}
	return m.table.Update(msg)
}

func (m *Model) View() string {
	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Accent).
		MarginBottom(1).
		Render(i18n.T("users.heading"))

	parts := []string{heading, m.search.View(), m.table.View()}
	if summary := m.summaryView(); summary != "" {
		parts = append(parts, summary)
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return m.focusActive()
}

func (m *Model) Blur() {
	m.focused = false
	m.search.Blur()
	m.table.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// SetOrigin tells the page where its top left corner is on screen.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
	m.layout()
}

// Table exposes the current table. It is replaced when the selection is
// cleared.
func (m *Model) Table() *datatable.Model[*record.Map] {
	return m.table
}

func (m *Model) Search() *fieldinput.Model {
	return m.search
}

// Selected returns the rows last reported by the table.
func (m *Model) Selected() []*record.Map {
	return m.selected
}

// SelectionJSON renders the selection the way it is copied.
func (m *Model) SelectionJSON() (string, error) {
	values := slicest.Map(m.selected, func(row *record.Map) map[string]any {
		return row.Values()
	})
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (m *Model) newTable() *datatable.Model[*record.Map] {
	opts := append([]datatable.NewOpt{
		datatable.WithTheme(m.theme),
		datatable.WithComparer(record.NewComparer(i18n.Tag())),
	}, m.tableOpts...)
	table := datatable.New[*record.Map](m.columns, nil, opts...)
	table.OnRowSelect = func(selected []*record.Map) {
		m.selected = selected
		m.refreshDetail()
	}
	return table
}

func (m *Model) loaded(msg loadedMsg) tea.Cmd {
	m.table.SetLoading(false)
	if msg.err != nil {
		logging.Errorf("users: loading rows: %v", msg.err)
		return footer.SetError(i18n.T("users.load_failed", msg.err))
	}
	logging.Debugf("users: loaded %d rows", len(msg.rows))
	m.all = msg.rows
	if len(msg.fields) > 0 {
		m.columns = datatable.ColumnsFor(msg.fields, true)
		m.table.SetColumns(m.columns)
	}
	m.table.SetData(m.filtered())
	return nil
}

// applyFilter is the search field's OnChange. The table keeps the same
// record pointers, so the selection survives filtering.
func (m *Model) applyFilter(string) {
	m.table.SetData(m.filtered())
}

func (m *Model) filtered() []*record.Map {
	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(m.search.Value()))
	if query == "" {
		return m.all
	}
	return slicest.Filter(m.all, func(row *record.Map) bool {
		for _, c := range m.columns {
			v, _ := row.Field(c.Field)
			if strings.Contains(fold.String(record.Format(v)), query) {
				return true
			}
		}
		return false
	})
}

func (m *Model) toggleFocus() tea.Cmd {
	m.search.Blur()
	m.table.Blur()
	if m.focus == focusSearch {
		m.focus = focusTable
	} else {
		m.focus = focusSearch
	}
	cmd, keyMap := m.focusActive()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

func (m *Model) focusActive() (tea.Cmd, help.KeyMap) {
	var (
		cmd    tea.Cmd
		keyMap help.KeyMap
	)
	if m.focus == focusSearch {
		cmd, keyMap = m.search.Focus()
	} else {
		cmd, keyMap = m.table.Focus()
	}
	return cmd, util.MergeKeyMaps(keyMap, m.keyMap)
}

func (m *Model) copySelection() tea.Cmd {
	if len(m.selected) == 0 {
		return nil
	}
	text, err := m.SelectionJSON()
	if err != nil {
		return footer.SetError(i18n.T("users.copy_failed", err))
	}
	write := m.clipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			logging.Warnf("users: clipboard: %v", err)
			return footer.StatusMsg{Text: i18n.T("users.copy_failed", err), Error: true}
		}
		return footer.StatusMsg{Text: i18n.T("users.copied")}
	}
}

// clearSelection starts over with a fresh table; the table itself has no
// way to drop its selection.
func (m *Model) clearSelection() tea.Cmd {
	sort := m.table.SortState()
	m.table = m.newTable()
	if sort.Active() {
		m.table.SortBy(sort.Field)
		if sort.Direction == datatable.Descending {
			m.table.SortBy(sort.Field)
		}
	}
	m.table.SetData(m.filtered())
	m.selected = nil
	m.refreshDetail()
	m.layout()

	var focusCmd tea.Cmd
	if m.focused {
		cmd, keyMap := m.focusActive()
		focusCmd = tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
	}
	return tea.Batch(focusCmd, footer.SetStatus(i18n.T("users.selection_cleared")))
}

func (m *Model) refreshDetail() {
	if len(m.selected) == 0 {
		m.detail.SetContent("")
		return
	}
	text, err := m.SelectionJSON()
	if err != nil {
		text = err.Error()
	}
	m.detail.SetContent(text)
	m.detail.GotoTop()
}

func (m *Model) summaryHeight() int {
	if len(m.selected) == 0 {
		return 0
	}
	lines := m.detail.TotalLineCount()
	// count line plus the dump
	return 1 + min(lines, maxDetailHeight, max(m.size.Height/3, 3))
}

func (m *Model) summaryView() string {
	if len(m.selected) == 0 {
		return ""
	}
	count := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Special).
		Render(i18n.TN("selection.count", len(m.selected)))
	return lipgloss.JoinVertical(lipgloss.Left, count, m.detail.View())
}

// layout splits the height between search, table and summary and keeps the
// table's mouse origin current.
func (m *Model) layout() {
	width := max(m.size.Width-2, 0)
	m.search.SetWidth(width)
	searchHeight := lipgloss.Height(m.search.View())

	summary := m.summaryHeight()
	m.detail.Width = width
	m.detail.Height = max(summary-1, 0)

	tableHeight := max(m.size.Height-headingHeight-searchHeight-summary, 0)
	m.table.Update(tea.WindowSizeMsg{Width: width, Height: tableHeight})
	m.table.SetOrigin(m.originX+1, m.originY+headingHeight+searchHeight)
}
