package leaderboard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/ui/styles"
)

// View renders the leaderboard tab.
func (m *Model) View() string {
	// Results can land while another tab is active, so resync here.
	m.syncRows()

	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderTable())
	sections = append(sections, m.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

// renderTitle renders the leaderboard title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Category Leaderboard")
	subtitle := styles.HelpStyle.Render("Lowest water usage ranks first")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderTable renders the ranking table, or an empty-state note.
func (m *Model) renderTable() string {
	snapshot := m.state.GetSnapshot()
	if snapshot == nil || !snapshot.Result.HasData() {
		return styles.CardStyle.Render(
			styles.InfoTextStyle.Render("No usage recorded for the selected filters."),
		)
	}

	return styles.CardStyle.Render(m.table.View())
}

// renderFooter shows the selection summary under the table.
func (m *Model) renderFooter() string {
	snapshot := m.state.GetSnapshot()
	if snapshot == nil || !snapshot.Result.HasData() {
		return ""
	}

	leader := snapshot.Result.Leaderboard[0]
	summary := fmt.Sprintf("%s leads with %d litres • press e to export",
		leader.Category, leader.Total)
	return styles.HelpStyle.Render(summary)
}
