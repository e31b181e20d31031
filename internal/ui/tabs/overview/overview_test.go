package overview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/app"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/models"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/services"
)

func testSnapshot() *services.Snapshot {
	day1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	return &services.Snapshot{
		Criteria: models.FilterCriteria{
			Range:      models.DateRange{Start: day1, End: day2},
			Categories: []string{"Boys", "Girls"},
		},
		Result: models.AggregateResult{
			TotalUsage:    350,
			AvgDailyUsage: 175,
			PeakDay:       day2,
			DailyTotals: []models.DailyTotal{
				{Date: day1, Total: 160},
				{Date: day2, Total: 190},
			},
			CategoryTotals: []models.CategoryTotal{
				{Category: "Boys", Total: 180},
				{Category: "Girls", Total: 170},
			},
			Leaderboard: []models.CategoryTotal{
				{Category: "Girls", Total: 170},
				{Category: "Boys", Total: 180},
			},
			Series: []models.CategorySeries{
				{Category: "Boys", Values: []float64{100, 80}},
				{Category: "Girls", Values: []float64{60, 110}},
			},
		},
	}
}

func TestNew(t *testing.T) {
	m := New(app.NewState())
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.Init() == nil {
		t.Error("Init returned nil")
	}
}

func TestModel_ViewLoading(t *testing.T) {
	state := app.NewState()
	m := New(state)
	m.SetSize(80, 24)

	if m.View() == "" {
		t.Error("loading view is empty")
	}
}

func TestModel_ViewWithSnapshot(t *testing.T) {
	state := app.NewState()
	state.SetLoading("initial", false)
	state.SetSnapshot(testSnapshot())

	m := New(state)
	m.SetSize(100, 40)

	view := m.View()
	for _, want := range []string{
		"Total Usage", "350 Litres",
		"Avg Daily Usage", "175 Litres",
		"Peak Usage Day", "2025-01-02",
		"2025-01-01 → 2025-01-02",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_ViewEmptyResult(t *testing.T) {
	state := app.NewState()
	state.SetLoading("initial", false)

	empty := testSnapshot()
	empty.Result = models.AggregateResult{}
	state.SetSnapshot(empty)

	m := New(state)
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "No usage recorded") {
		t.Error("empty result should show the no-data note")
	}
	if !strings.Contains(view, models.PeakDayNA) {
		t.Error("empty result should show N/A peak day")
	}
}

func TestModel_ExportKey(t *testing.T) {
	state := app.NewState()
	m := New(state)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	if cmd == nil {
		t.Fatal("'e' should produce a command")
	}
	if _, ok := cmd().(app.ExportRequestMsg); !ok {
		t.Errorf("cmd() = %T, want ExportRequestMsg", cmd())
	}
}

func TestModel_Help(t *testing.T) {
	m := New(app.NewState())
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}
