// Package engine implements the logical core of the dashboard: synthetic
// dataset generation, criteria-based filtering, and metric aggregation.
// Everything here is pure and side-effect free; session caching lives in
// the store and services packages.
package engine

import (
	"math/rand"
	"time"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/models"
)

// GenerateOptions controls synthetic dataset generation.
type GenerateOptions struct {
	// Now anchors the window; the dataset covers the Days consecutive
	// calendar days ending at Now's date, inclusive.
	Now time.Time
	// Days is the window length. Defaults to 31 when zero.
	Days int
	// Categories crossed with every date. Defaults to Boys/Girls/Staff
	// when empty.
	Categories []string
	// MinUsage and MaxUsage bound the uniform draw: [MinUsage, MaxUsage).
	// Default to 50 and 200 when both are zero; a max at or below min
	// collapses to a constant MinUsage draw.
	MinUsage int
	MaxUsage int
	// Seed makes generation reproducible. Zero means time-seeded.
	Seed int64
}

const (
	defaultDays     = 31
	defaultMinUsage = 50
	defaultMaxUsage = 200
)

var defaultCategories = []string{"Boys", "Girls", "Staff"}

// Generate produces a dense dataset: exactly one record per (date,
// category) pair, date-major and category-minor. Ordering is stable for a
// fixed seed; downstream grouping relies on it.
func Generate(opts GenerateOptions) []models.UsageRecord {
	if opts.Days <= 0 {
		opts.Days = defaultDays
	}
	if len(opts.Categories) == 0 {
		opts.Categories = defaultCategories
	}
	if opts.MinUsage == 0 && opts.MaxUsage == 0 {
		opts.MinUsage = defaultMinUsage
		opts.MaxUsage = defaultMaxUsage
	}
	// Generation cannot fail: degenerate bounds collapse to a constant
	// draw of MinUsage instead of panicking in rand.Intn.
	if opts.MaxUsage <= opts.MinUsage {
		opts.MaxUsage = opts.MinUsage + 1
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	end := models.Day(opts.Now)
	start := end.AddDate(0, 0, -(opts.Days - 1))
	span := opts.MaxUsage - opts.MinUsage

	records := make([]models.UsageRecord, 0, opts.Days*len(opts.Categories))
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, cat := range opts.Categories {
			records = append(records, models.UsageRecord{
				Date:     day,
				Category: cat,
				Usage:    opts.MinUsage + rng.Intn(span),
			})
		}
	}

	return records
}
