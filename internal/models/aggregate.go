// Package models defines data structures and domain types.
package models

import (
	"fmt"
	"time"
)

// PeakDayNA is the sentinel shown when no peak day exists (empty result).
const PeakDayNA = "N/A"

// DailyTotal is the summed usage across categories for one date.
type DailyTotal struct {
	Date  time.Time
	Total int
}

// CategoryTotal is the summed usage for one category over the filtered range.
type CategoryTotal struct {
	Category string
	Total    int
}

// CategorySeries holds one chart series: the per-day usage values of a
// single category, ordered by date.
type CategorySeries struct {
	Category string
	Values   []float64
}

// AggregateResult holds every derived metric for one rendering pass.
// It is recomputed from scratch on each filter change and never persisted.
type AggregateResult struct {
	TotalUsage     int
	AvgDailyUsage  float64
	PeakDay        time.Time // zero when the filtered set is empty
	DailyTotals    []DailyTotal
	CategoryTotals []CategoryTotal
	Leaderboard    []CategoryTotal // ascending by total; lowest usage wins
	Series         []CategorySeries
}

// HasData reports whether the filtered set contained any records.
func (r *AggregateResult) HasData() bool {
	return len(r.DailyTotals) > 0
}

// PeakDayLabel formats the peak day as YYYY-MM-DD, or "N/A" when the
// filtered set was empty.
func (r *AggregateResult) PeakDayLabel() string {
	if r.PeakDay.IsZero() {
		return PeakDayNA
	}
	return r.PeakDay.Format(DateFormat)
}

// TotalLabel formats total usage as an integer quantity string.
func (r *AggregateResult) TotalLabel() string {
	return fmt.Sprintf("%d Litres", r.TotalUsage)
}

// AvgDailyLabel formats average daily usage as an integer quantity string.
func (r *AggregateResult) AvgDailyLabel() string {
	return fmt.Sprintf("%.0f Litres", r.AvgDailyUsage)
}
