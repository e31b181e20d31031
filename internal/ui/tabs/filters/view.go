package filters

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/ui/styles"
)

// View renders the filters tab.
func (m *Model) View() string {
	m.syncCategories()

	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderDateForm())
	sections = append(sections, m.renderCategoryList())
	sections = append(sections, m.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

// renderTitle renders the filters title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Filters")
	subtitle := styles.HelpStyle.Render("Choose the date range and categories, then press Enter")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderDateForm renders the start and end date inputs.
func (m *Model) renderDateForm() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Date Range"))
	rows = append(rows, "")

	startBorder := styles.BlurredBorderStyle
	endBorder := styles.BlurredBorderStyle
	if m.focused == fieldStart {
		startBorder = styles.FocusedBorderStyle
	}
	if m.focused == fieldEnd {
		endBorder = styles.FocusedBorderStyle
	}

	startBox := lipgloss.JoinVertical(lipgloss.Left,
		styles.KPILabelStyle.Render("Start"),
		startBorder.Render(m.startInput.View()),
	)
	endBox := lipgloss.JoinVertical(lipgloss.Left,
		styles.KPILabelStyle.Render("End"),
		endBorder.Render(m.endInput.View()),
	)

	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, startBox, "   ", endBox))

	return m.card(rows)
}

// renderCategoryList renders the category checklist.
func (m *Model) renderCategoryList() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Categories"))
	rows = append(rows, "")

	if len(m.categories) == 0 {
		rows = append(rows, styles.HelpStyle.Render("Waiting for dataset..."))
		return m.card(rows)
	}

	for i, c := range m.categories {
		check := "[ ]"
		if m.selected[c] {
			check = "[x]"
		}

		line := fmt.Sprintf("%s %s", check, c)
		if m.focused == fieldCategories+formField(i) {
			line = styles.SelectedListItemStyle.String() + styles.FocusedStyle.Render(line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}

	return m.card(rows)
}

// renderFooter shows the key hints.
func (m *Model) renderFooter() string {
	return styles.HelpStyle.Render(
		"tab/↑↓ move • space toggle • enter apply • ctrl+r reset",
	)
}

func (m *Model) card(rows []string) string {
	cardWidth := max(m.width-6, 40)
	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
