// Package models defines data structures and domain types.
package models

import "time"

// DateFormat is the canonical day-granularity date layout used across the
// application (charts, KPI cards, exports, the session store).
const DateFormat = "2006-01-02"

// UsageRecord is one row of the dataset: litres used by one category on
// one calendar day.
type UsageRecord struct {
	Date     time.Time
	Category string
	Usage    int
}

// Day returns the record's date truncated to day granularity.
func (r UsageRecord) Day() time.Time {
	return Day(r.Date)
}

// Day truncates a timestamp to midnight UTC. All date comparisons in the
// filter and aggregator operate on day-truncated values.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateRange is an inclusive calendar-day interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the given date falls within the range,
// inclusive of both endpoints. Start > End simply matches nothing.
func (d DateRange) Contains(t time.Time) bool {
	day := Day(t)
	return !day.Before(Day(d.Start)) && !day.After(Day(d.End))
}

// FilterCriteria is the ephemeral user selection driving one recompute
// pass: an inclusive date range and a set of category labels.
type FilterCriteria struct {
	Range      DateRange
	Categories []string
}

// Categories returns the distinct categories present in the dataset, in
// first-encounter order. The working category domain is always derived
// from the data, never hardcoded.
func Categories(records []UsageRecord) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, r := range records {
		if !seen[r.Category] {
			seen[r.Category] = true
			cats = append(cats, r.Category)
		}
	}
	return cats
}

// DateBounds returns the earliest and latest dates present in the dataset.
// ok is false for an empty dataset.
func DateBounds(records []UsageRecord) (minDay, maxDay time.Time, ok bool) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}, false
	}
	minDay = records[0].Day()
	maxDay = minDay
	for _, r := range records[1:] {
		day := r.Day()
		if day.Before(minDay) {
			minDay = day
		}
		if day.After(maxDay) {
			maxDay = day
		}
	}
	return minDay, maxDay, true
}
