// Package filters provides the filters tab: a date range form and a
// category checklist that drive every recompute pass.
package filters

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/app"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/models"
)

// formField identifies the focusable elements of the filter form, in
// traversal order: start date, end date, one slot per category, apply.
type formField int

const (
	fieldStart formField = iota
	fieldEnd
	fieldCategories // first category slot; later slots follow
)

// keyMap defines the key bindings specific to the filters tab.
type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Apply  key.Binding
	Reset  key.Binding
}

// defaultKeyMap returns the default key bindings for the filters tab.
func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev field"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle category"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filters"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
	}
}

// Model represents the filters tab state.
type Model struct {
	state      *app.State
	keys       keyMap
	startInput textinput.Model
	endInput   textinput.Model

	categories []string
	selected   map[string]bool

	focused formField
	width   int
	height  int
}

// New creates a new filters model.
func New(state *app.State) *Model {
	startInput := textinput.New()
	startInput.Placeholder = "YYYY-MM-DD"
	startInput.CharLimit = len(models.DateFormat)
	startInput.Width = 14
	startInput.Focus()

	endInput := textinput.New()
	endInput.Placeholder = "YYYY-MM-DD"
	endInput.CharLimit = len(models.DateFormat)
	endInput.Width = 14

	return &Model{
		state:      state,
		keys:       defaultKeyMap(),
		startInput: startInput,
		endInput:   endInput,
		selected:   make(map[string]bool),
		focused:    fieldStart,
	}
}

// Init initializes the filters tab.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// syncCategories adopts the dataset's category domain once it is known.
// New categories default to selected; date inputs default to the full
// dataset range.
func (m *Model) syncCategories() {
	cats := m.state.GetCategories()
	if len(cats) == len(m.categories) {
		return
	}

	m.categories = cats
	for _, c := range cats {
		if _, ok := m.selected[c]; !ok {
			m.selected[c] = true
		}
	}

	if first, last, ok := m.state.GetDateBounds(); ok {
		if m.startInput.Value() == "" {
			m.startInput.SetValue(first.Format(models.DateFormat))
		}
		if m.endInput.Value() == "" {
			m.endInput.SetValue(last.Format(models.DateFormat))
		}
	}
}

// fieldCount returns the number of focusable fields.
func (m *Model) fieldCount() int {
	return int(fieldCategories) + len(m.categories)
}

// Update handles messages for the filters tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case app.DatasetLoadedMsg:
		m.syncCategories()

	case app.TabSwitchMsg:
		m.syncCategories()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (app.Tab, tea.Cmd) {
	m.syncCategories()

	switch {
	case key.Matches(msg, m.keys.Apply):
		return m, m.applyCmd()

	case key.Matches(msg, m.keys.Reset):
		return m, func() tea.Msg { return app.ResetFilterMsg{} }

	case key.Matches(msg, m.keys.Next):
		m.focusField((int(m.focused) + 1) % m.fieldCount())
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.focusField((int(m.focused) - 1 + m.fieldCount()) % m.fieldCount())
		return m, nil

	case key.Matches(msg, m.keys.Toggle) && m.focused >= fieldCategories:
		idx := int(m.focused - fieldCategories)
		if idx < len(m.categories) {
			c := m.categories[idx]
			m.selected[c] = !m.selected[c]
		}
		return m, nil
	}

	// Route remaining keys to the focused text input.
	var cmd tea.Cmd
	switch m.focused {
	case fieldStart:
		m.startInput, cmd = m.startInput.Update(msg)
	case fieldEnd:
		m.endInput, cmd = m.endInput.Update(msg)
	}
	return m, cmd
}

// focusField moves keyboard focus to the given field index.
func (m *Model) focusField(idx int) {
	m.focused = formField(idx)

	m.startInput.Blur()
	m.endInput.Blur()

	switch m.focused {
	case fieldStart:
		m.startInput.Focus()
	case fieldEnd:
		m.endInput.Focus()
	}
}

// applyCmd emits the filter request with the raw form values. Validation
// happens downstream so a malformed date surfaces as an error toast.
func (m *Model) applyCmd() tea.Cmd {
	endpoints := []string{m.startInput.Value(), m.endInput.Value()}

	var cats []string
	for _, c := range m.categories {
		if m.selected[c] {
			cats = append(cats, c)
		}
	}

	return func() tea.Msg {
		return app.ApplyFilterMsg{Endpoints: endpoints, Categories: cats}
	}
}

// SetSize sets the available size for the filters tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.Next,
		m.keys.Toggle,
		m.keys.Apply,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Next, m.keys.Prev},
		{m.keys.Toggle, m.keys.Apply, m.keys.Reset},
	}
}
