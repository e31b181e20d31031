package engine

import (
	"sort"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/models"
)

// Aggregate computes every derived metric for one rendering pass from a
// (possibly empty) filtered dataset. It never fails: an empty input
// yields zero totals, a zero average, and the N/A peak-day sentinel.
func Aggregate(records []models.UsageRecord) models.AggregateResult {
	var result models.AggregateResult
	if len(records) == 0 {
		return result
	}

	// Group in first-encounter order. Records arrive date-major from the
	// generator, so daily totals come out date-ascending.
	dayIndex := make(map[string]int)
	catIndex := make(map[string]int)

	for _, r := range records {
		result.TotalUsage += r.Usage

		dayKey := r.Day().Format(models.DateFormat)
		if i, ok := dayIndex[dayKey]; ok {
			result.DailyTotals[i].Total += r.Usage
		} else {
			dayIndex[dayKey] = len(result.DailyTotals)
			result.DailyTotals = append(result.DailyTotals, models.DailyTotal{Date: r.Day(), Total: r.Usage})
		}

		if i, ok := catIndex[r.Category]; ok {
			result.CategoryTotals[i].Total += r.Usage
		} else {
			catIndex[r.Category] = len(result.CategoryTotals)
			result.CategoryTotals = append(result.CategoryTotals, models.CategoryTotal{Category: r.Category, Total: r.Usage})
		}
	}

	result.AvgDailyUsage = float64(result.TotalUsage) / float64(len(result.DailyTotals))

	// Peak day: first date in insertion order wins ties.
	peak := result.DailyTotals[0]
	for _, dt := range result.DailyTotals[1:] {
		if dt.Total > peak.Total {
			peak = dt
		}
	}
	result.PeakDay = peak.Date

	// Leaderboard is ascending by total; lowest consumption ranks first.
	// Stable sort keeps first-encounter order for ties.
	result.Leaderboard = make([]models.CategoryTotal, len(result.CategoryTotals))
	copy(result.Leaderboard, result.CategoryTotals)
	sort.SliceStable(result.Leaderboard, func(i, j int) bool {
		return result.Leaderboard[i].Total < result.Leaderboard[j].Total
	})

	result.Series = buildSeries(records, result.DailyTotals, catIndex)

	return result
}

// buildSeries shapes the filtered records into one per-category series
// aligned on the distinct-date axis, for the multi-series line chart.
// Dates where a category has no record chart as zero.
func buildSeries(
	records []models.UsageRecord,
	dailyTotals []models.DailyTotal,
	catIndex map[string]int,
) []models.CategorySeries {
	axis := make(map[string]int, len(dailyTotals))
	for i, dt := range dailyTotals {
		axis[dt.Date.Format(models.DateFormat)] = i
	}

	series := make([]models.CategorySeries, len(catIndex))
	for cat, i := range catIndex {
		series[i] = models.CategorySeries{
			Category: cat,
			Values:   make([]float64, len(dailyTotals)),
		}
	}

	for _, r := range records {
		i := catIndex[r.Category]
		j := axis[r.Day().Format(models.DateFormat)]
		series[i].Values[j] += float64(r.Usage)
	}

	return series
}
