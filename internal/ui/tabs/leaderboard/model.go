// Package leaderboard provides the leaderboard tab ranking categories
// by water usage, lowest first.
package leaderboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/app"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/ui/styles"
)

// keyMap defines the key bindings specific to the leaderboard tab.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Export key.Binding
}

// defaultKeyMap returns the default key bindings for the leaderboard tab.
func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export csv"),
		),
	}
}

// Model represents the leaderboard tab state.
type Model struct {
	state  *app.State
	table  table.Model
	keys   keyMap
	width  int
	height int
}

// New creates a new leaderboard model.
func New(state *app.State) *Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Category", Width: 20},
		{Title: "Total Litres", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Subtle).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.TextPrimary).
		Background(styles.BgAccent).
		Bold(true)
	t.SetStyles(s)

	return &Model{
		state: state,
		table: t,
		keys:  defaultKeyMap(),
	}
}

// Init initializes the leaderboard tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the leaderboard tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Export):
			return m, func() tea.Msg { return app.ExportRequestMsg{} }

		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}

	case app.ResultComputedMsg, app.TabSwitchMsg:
		m.syncRows()
	}

	return m, tea.Batch(cmds...)
}

// syncRows rebuilds the table rows from the current snapshot. Ranks are
// ascending: the lowest-usage category sits at rank 1.
func (m *Model) syncRows() {
	snapshot := m.state.GetSnapshot()
	if snapshot == nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, len(snapshot.Result.Leaderboard))
	for i, entry := range snapshot.Result.Leaderboard {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			entry.Category,
			fmt.Sprintf("%d", entry.Total),
		}
	}
	m.table.SetRows(rows)
}

// SetSize sets the available size for the leaderboard tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	tableHeight := max(height-10, 4)
	m.table.SetHeight(tableHeight)
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.Up,
		m.keys.Down,
		m.keys.Export,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down},
		{m.keys.Export},
	}
}
