package overview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/models"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/ui/components"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/ui/styles"
)

// View renders the overview tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.renderLoading()
	}

	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderCriteria())
	sections = append(sections, m.renderKPIs())
	sections = append(sections, m.renderDailyChart())
	sections = append(sections, m.renderCategoryBars())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

// renderLoading renders the loading state.
func (m *Model) renderLoading() string {
	return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
}

// renderTitle renders the overview title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("AquaVision Overview")
	subtitle := styles.HelpStyle.Render("School water usage for the selected period")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderCriteria shows the active date range and category selection.
func (m *Model) renderCriteria() string {
	snapshot := m.state.GetSnapshot()
	if snapshot == nil {
		return ""
	}

	c := snapshot.Criteria
	rangeLabel := fmt.Sprintf("%s → %s",
		c.Range.Start.Format(models.DateFormat),
		c.Range.End.Format(models.DateFormat),
	)
	catLabel := strings.Join(c.Categories, ", ")

	line := fmt.Sprintf("%s %s   %s %s",
		styles.SubTitleStyle.Render("Range:"),
		rangeLabel,
		styles.SubTitleStyle.Render("Categories:"),
		catLabel,
	)
	return lipgloss.JoinVertical(lipgloss.Left, line, "")
}

// renderKPIs renders the headline metric cards.
func (m *Model) renderKPIs() string {
	snapshot := m.state.GetSnapshot()
	if snapshot == nil {
		return styles.HelpStyle.Render("Waiting for first result...")
	}

	r := &snapshot.Result
	return components.KPIRow(m.width-4,
		[2]string{"Total Usage", r.TotalLabel()},
		[2]string{"Avg Daily Usage", r.AvgDailyLabel()},
		[2]string{"Peak Usage Day", r.PeakDayLabel()},
	)
}

// renderDailyChart renders one line per category over the selected days.
func (m *Model) renderDailyChart() string {
	snapshot := m.state.GetSnapshot()
	if snapshot == nil {
		return ""
	}

	r := &snapshot.Result

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Daily Usage by Category"))

	if !r.HasData() {
		rows = append(rows, "")
		rows = append(rows, styles.InfoTextStyle.Render("No usage recorded for the selected filters."))
		return m.card(rows)
	}

	series := make([][]float64, len(r.Series))
	categories := make([]string, len(r.Series))
	for i, s := range r.Series {
		series[i] = s.Values
		categories[i] = s.Category
	}

	chartWidth := max(m.width-20, 30)
	chart := components.RenderMultiLineChart(series, chartWidth, 10, "litres per day")

	rows = append(rows, "")
	rows = append(rows, chart)
	rows = append(rows, "")
	rows = append(rows, components.CategoryLegend(categories))

	return m.card(rows)
}

// renderCategoryBars renders category totals as horizontal bars.
func (m *Model) renderCategoryBars() string {
	snapshot := m.state.GetSnapshot()
	if snapshot == nil {
		return ""
	}

	r := &snapshot.Result

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Category Totals"))

	if !r.HasData() {
		rows = append(rows, "")
		rows = append(rows, styles.HelpStyle.Render("Nothing to chart."))
		return m.card(rows)
	}

	values := make([]float64, len(r.CategoryTotals))
	labels := make([]string, len(r.CategoryTotals))
	for i, ct := range r.CategoryTotals {
		values[i] = float64(ct.Total)
		labels[i] = ct.Category
	}

	rows = append(rows, "")
	rows = append(rows, components.RenderBarChart(values, labels, max(m.width-12, 40)))

	return m.card(rows)
}

func (m *Model) card(rows []string) string {
	cardWidth := max(m.width-6, 40)
	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
