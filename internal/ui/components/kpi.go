package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/ui/styles"
)

// KPICard renders a bordered card with a title and a headline value.
func KPICard(title, value string, width int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.KPILabelStyle.Render(title),
		styles.KPIValueStyle.Render(value),
	)

	card := styles.CardStyle
	if width > 0 {
		card = card.Width(width)
	}
	return card.Render(content)
}

// KPIRow lays out several KPI cards side by side, splitting the
// available width evenly.
func KPIRow(width int, cards ...[2]string) string {
	if len(cards) == 0 {
		return ""
	}

	// Border and margin eat a few cells per card.
	cardWidth := width/len(cards) - 4
	if cardWidth < 12 {
		cardWidth = 12
	}

	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = KPICard(c[0], c[1], cardWidth)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
