package services

import (
	"errors"
	"testing"
	"time"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/config"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/engine"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		DatabasePath: ":memory:",
		ExportDir:    "",
		Categories:   []string{"Boys", "Girls", "Staff"},
		WindowDays:   31,
		UsageMin:     50,
		UsageMax:     200,
		DatasetSeed:  42,
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := NewManager(testConfig())
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	t.Cleanup(func() {
		if err := m.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return m
}

func TestNewManagerGeneratesDenseDataset(t *testing.T) {
	m := newTestManager(t)

	dataset := m.Dataset()
	if got, want := len(dataset), 31*3; got != want {
		t.Fatalf("len(Dataset()) = %d, want %d", got, want)
	}

	cats := m.Categories()
	want := []string{"Boys", "Girls", "Staff"}
	if len(cats) != len(want) {
		t.Fatalf("Categories() = %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, cats[i], want[i])
		}
	}

	minDay, maxDay, ok := m.DateBounds()
	if !ok {
		t.Fatal("DateBounds() ok = false, want true")
	}
	if got := int(maxDay.Sub(minDay).Hours() / 24); got != 30 {
		t.Errorf("date span = %d days, want 30", got)
	}
}

func TestRecomputeFullRangeMatchesDataset(t *testing.T) {
	m := newTestManager(t)

	snapshot, err := m.Recompute(m.FullRangeEndpoints(), m.Categories())
	if err != nil {
		t.Fatalf("Recompute() error = %v", err)
	}

	if got, want := len(snapshot.Records), len(m.Dataset()); got != want {
		t.Errorf("len(snapshot.Records) = %d, want %d", got, want)
	}
	if snapshot.UsedFallback {
		t.Error("UsedFallback = true, want false")
	}

	var wantTotal int
	for _, r := range m.Dataset() {
		wantTotal += r.Usage
	}
	if snapshot.Result.TotalUsage != wantTotal {
		t.Errorf("TotalUsage = %d, want %d", snapshot.Result.TotalUsage, wantTotal)
	}
}

func TestRecomputeInvalidRange(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		name      string
		endpoints []string
	}{
		{"single endpoint", []string{"2026-08-01"}},
		{"no endpoints", nil},
		{"unparsable date", []string{"2026-08-01", "yesterday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := m.Recompute(tt.endpoints, m.Categories())
			if !errors.Is(err, engine.ErrInvalidDateRange) {
				t.Fatalf("Recompute() error = %v, want ErrInvalidDateRange", err)
			}
			if snapshot != nil {
				t.Error("snapshot != nil on invalid range")
			}
		})
	}
}

func TestRecomputeInvertedRangeIsEmpty(t *testing.T) {
	m := newTestManager(t)

	minDay, maxDay, _ := m.DateBounds()
	endpoints := []string{
		maxDay.Format(models.DateFormat),
		minDay.Format(models.DateFormat),
	}

	snapshot, err := m.Recompute(endpoints, m.Categories())
	if err != nil {
		t.Fatalf("Recompute() error = %v", err)
	}
	if len(snapshot.Records) != 0 {
		t.Errorf("len(snapshot.Records) = %d, want 0", len(snapshot.Records))
	}
	if snapshot.Result.HasData() {
		t.Error("HasData() = true for inverted range")
	}
}

func TestRecomputeCategoryFallback(t *testing.T) {
	m := newTestManager(t)

	snapshot, err := m.Recompute(m.FullRangeEndpoints(), nil)
	if err != nil {
		t.Fatalf("Recompute() error = %v", err)
	}

	if !snapshot.UsedFallback {
		t.Error("UsedFallback = false, want true")
	}
	for _, r := range snapshot.Records {
		if r.Category != engine.FallbackCategory {
			t.Fatalf("record category = %q, want %q", r.Category, engine.FallbackCategory)
		}
	}
}

func TestRecomputeBroadcastsResultEvent(t *testing.T) {
	m := newTestManager(t)

	ch, unsubscribe := m.Subscribe()
	defer unsubscribe()

	snapshot, err := m.Recompute(m.FullRangeEndpoints(), m.Categories())
	if err != nil {
		t.Fatalf("Recompute() error = %v", err)
	}

	select {
	case event := <-ch:
		result, ok := event.(ResultEvent)
		if !ok {
			t.Fatalf("event = %T, want ResultEvent", event)
		}
		if result.Snapshot.Result.TotalUsage != snapshot.Result.TotalUsage {
			t.Error("broadcast snapshot does not match returned snapshot")
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestManagerReloadsFromFileStore(t *testing.T) {
	cfg := testConfig()
	cfg.DatabasePath = t.TempDir() + "/session.db"

	m1, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	first := m1.Dataset()
	if err := m1.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Same file, different seed: the store wins over regeneration.
	cfg.DatasetSeed = 7
	m2, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	defer m2.Close()

	second := m2.Dataset()
	if len(first) != len(second) {
		t.Fatalf("len mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("record %d differs after reload: %+v vs %+v", i, first[i], second[i])
		}
	}
}
