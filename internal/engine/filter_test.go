package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sampleDataset is the two-day fixture shared by the scenario tests:
// day1 Boys=100 Girls=50, day2 Boys=80 Girls=120.
func sampleDataset() []models.UsageRecord {
	return []models.UsageRecord{
		{Date: date(2026, time.March, 1), Category: "Boys", Usage: 100},
		{Date: date(2026, time.March, 1), Category: "Girls", Usage: 50},
		{Date: date(2026, time.March, 2), Category: "Boys", Usage: 80},
		{Date: date(2026, time.March, 2), Category: "Girls", Usage: 120},
	}
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name      string
		endpoints []string
		wantErr   bool
	}{
		{"Valid", []string{"2026-03-01", "2026-03-10"}, false},
		{"SingleDate", []string{"2026-03-01"}, true},
		{"SingleWithBlank", []string{"2026-03-01", ""}, true},
		{"None", nil, true},
		{"BothBlank", []string{"", "  "}, true},
		{"ThreeEndpoints", []string{"2026-03-01", "2026-03-05", "2026-03-10"}, true},
		{"Unparsable", []string{"2026-03-01", "not-a-date"}, true},
		{"Whitespace", []string{" 2026-03-01 ", " 2026-03-10 "}, false},
		{"InvertedNotAnError", []string{"2026-03-10", "2026-03-01"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseDateRange(tt.endpoints)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidDateRange) {
					t.Errorf("error %v should wrap ErrInvalidDateRange", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Start.IsZero() || r.End.IsZero() {
				t.Error("parsed range has zero endpoints")
			}
		})
	}
}

func TestNormalizeCategories(t *testing.T) {
	tests := []struct {
		name         string
		selected     []string
		want         []string
		wantFellBack bool
	}{
		{"NonEmpty", []string{"Girls", "Staff"}, []string{"Girls", "Staff"}, false},
		{"Empty", nil, []string{"Boys"}, true},
		{"BlanksOnly", []string{"", "  "}, []string{"Boys"}, true},
		{"Trimmed", []string{" Girls "}, []string{"Girls"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fellBack := NormalizeCategories(tt.selected)
			if fellBack != tt.wantFellBack {
				t.Errorf("fellBack = %v, want %v", fellBack, tt.wantFellBack)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilter_ExactMatchSet(t *testing.T) {
	ds := sampleDataset()
	criteria := models.FilterCriteria{
		Range:      models.DateRange{Start: date(2026, time.March, 1), End: date(2026, time.March, 2)},
		Categories: []string{"Boys", "Girls"},
	}

	got := Filter(ds, criteria)
	if len(got) != 4 {
		t.Fatalf("full-range all-categories filter kept %d of 4 records", len(got))
	}

	// Exactly the records in range with a selected category — no more, no fewer.
	for _, r := range got {
		if !criteria.Range.Contains(r.Date) {
			t.Errorf("record %v outside range", r.Date)
		}
	}
}

func TestFilter_CategorySubset(t *testing.T) {
	ds := sampleDataset()
	criteria := models.FilterCriteria{
		Range:      models.DateRange{Start: date(2026, time.March, 1), End: date(2026, time.March, 2)},
		Categories: []string{"Girls"},
	}

	got := Filter(ds, criteria)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	for _, r := range got {
		if r.Category != "Girls" {
			t.Errorf("unexpected category %q", r.Category)
		}
	}
}

func TestFilter_DateSubset(t *testing.T) {
	ds := sampleDataset()
	criteria := models.FilterCriteria{
		Range:      models.DateRange{Start: date(2026, time.March, 2), End: date(2026, time.March, 2)},
		Categories: []string{"Boys", "Girls"},
	}

	got := Filter(ds, criteria)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	for _, r := range got {
		if !r.Day().Equal(date(2026, time.March, 2)) {
			t.Errorf("unexpected date %v", r.Day())
		}
	}
}

func TestFilter_InvertedRangeYieldsEmpty(t *testing.T) {
	ds := sampleDataset()
	criteria := models.FilterCriteria{
		Range:      models.DateRange{Start: date(2026, time.March, 2), End: date(2026, time.March, 1)},
		Categories: []string{"Boys", "Girls"},
	}

	if got := Filter(ds, criteria); len(got) != 0 {
		t.Errorf("inverted range matched %d records, want 0", len(got))
	}
}

func TestFilter_OutOfWindowYieldsEmpty(t *testing.T) {
	ds := sampleDataset()
	criteria := models.FilterCriteria{
		Range:      models.DateRange{Start: date(2027, time.January, 1), End: date(2027, time.January, 31)},
		Categories: []string{"Boys", "Girls"},
	}

	if got := Filter(ds, criteria); len(got) != 0 {
		t.Errorf("out-of-window range matched %d records, want 0", len(got))
	}
}

func TestFilter_UnknownCategory(t *testing.T) {
	ds := sampleDataset()
	criteria := models.FilterCriteria{
		Range:      models.DateRange{Start: date(2026, time.March, 1), End: date(2026, time.March, 2)},
		Categories: []string{"Visitors"},
	}

	if got := Filter(ds, criteria); len(got) != 0 {
		t.Errorf("unknown category matched %d records, want 0", len(got))
	}
}

// Scenario B: empty selection is equivalent to explicitly selecting Boys,
// plus the fallback indicator.
func TestFilter_EmptySelectionFallback(t *testing.T) {
	ds := sampleDataset()
	fullRange := models.DateRange{Start: date(2026, time.March, 1), End: date(2026, time.March, 2)}

	cats, fellBack := NormalizeCategories(nil)
	if !fellBack {
		t.Fatal("empty selection should fall back")
	}

	viaFallback := Filter(ds, models.FilterCriteria{Range: fullRange, Categories: cats})
	explicit := Filter(ds, models.FilterCriteria{Range: fullRange, Categories: []string{"Boys"}})

	if len(viaFallback) != len(explicit) {
		t.Fatalf("fallback filtered %d records, explicit Boys %d", len(viaFallback), len(explicit))
	}
	for i := range viaFallback {
		if viaFallback[i] != explicit[i] {
			t.Errorf("record %d differs: %+v vs %+v", i, viaFallback[i], explicit[i])
		}
	}

	if total := Aggregate(viaFallback).TotalUsage; total != 180 {
		t.Errorf("Boys-only total = %d, want 180", total)
	}
}
