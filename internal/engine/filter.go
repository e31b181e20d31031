package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/models"
)

// FallbackCategory is substituted when the user selects no categories.
// An empty selection is not "no filter"; it narrows to exactly this set.
const FallbackCategory = "Boys"

// ErrInvalidDateRange is returned when the supplied range does not consist
// of exactly two parseable endpoints. The interaction that produced it
// must halt: no aggregation, no render.
var ErrInvalidDateRange = errors.New("invalid date range")

// ParseDateRange validates and parses user-supplied range endpoints.
// Blank endpoints are discarded before counting, so a single filled-in
// field and an empty form both fail the two-endpoint check.
func ParseDateRange(endpoints []string) (models.DateRange, error) {
	var filled []string
	for _, e := range endpoints {
		if trimmed := strings.TrimSpace(e); trimmed != "" {
			filled = append(filled, trimmed)
		}
	}

	if len(filled) != 2 {
		return models.DateRange{}, fmt.Errorf("%w: expected 2 endpoints, got %d", ErrInvalidDateRange, len(filled))
	}

	start, err := time.Parse(models.DateFormat, filled[0])
	if err != nil {
		return models.DateRange{}, fmt.Errorf("%w: start %q is not a valid date", ErrInvalidDateRange, filled[0])
	}
	end, err := time.Parse(models.DateFormat, filled[1])
	if err != nil {
		return models.DateRange{}, fmt.Errorf("%w: end %q is not a valid date", ErrInvalidDateRange, filled[1])
	}

	// Start after end is not an error; it yields an empty result set.
	return models.DateRange{Start: start, End: end}, nil
}

// NormalizeCategories applies the empty-selection fallback. It returns the
// effective selection and whether the fallback fired (callers surface a
// warning when it did).
func NormalizeCategories(selected []string) (effective []string, fellBack bool) {
	var filled []string
	for _, c := range selected {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			filled = append(filled, trimmed)
		}
	}

	if len(filled) == 0 {
		return []string{FallbackCategory}, true
	}
	return filled, false
}

// Filter returns the records whose date lies within the criteria's range
// and whose category is in the selected set. One pass, input order kept.
func Filter(records []models.UsageRecord, criteria models.FilterCriteria) []models.UsageRecord {
	selected := make(map[string]bool, len(criteria.Categories))
	for _, c := range criteria.Categories {
		selected[c] = true
	}

	var matched []models.UsageRecord
	for _, r := range records {
		if selected[r.Category] && criteria.Range.Contains(r.Date) {
			matched = append(matched, r)
		}
	}
	return matched
}
