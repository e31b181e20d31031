package app

import (
	"testing"
	"time"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/models"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/services"
)

func TestNewState(t *testing.T) {
	s := NewState()
	if s == nil {
		t.Fatal("NewState returned nil")
	}
	if len(s.Categories) != 0 {
		t.Error("Categories should be empty")
	}
	if s.Loading.Initial != true {
		t.Error("Initial loading should be true")
	}
	if s.GetSnapshot() != nil {
		t.Error("Snapshot should be nil before the first compute pass")
	}
}

func TestState_SetLoading(t *testing.T) {
	s := NewState()

	s.SetLoading("compute", true)
	if !s.Loading.Compute {
		t.Error("Compute loading should be true")
	}
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true")
	}

	s.SetLoading("compute", false)
	// Initial is still true
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true (Initial is true)")
	}

	s.SetLoading("initial", false)
	if s.AnyLoading() {
		t.Error("AnyLoading should be false")
	}

	s.SetLoading("export", true)
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true (Export is true)")
	}
}

func TestState_Dataset(t *testing.T) {
	s := NewState()

	first := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	s.SetDataset([]string{"Boys", "Girls", "Staff"}, first, last, 93)

	if got := s.GetDatasetSize(); got != 93 {
		t.Errorf("GetDatasetSize = %d, want 93", got)
	}

	cats := s.GetCategories()
	if len(cats) != 3 || cats[0] != "Boys" {
		t.Errorf("GetCategories = %v", cats)
	}

	// The copy must not alias internal state.
	cats[0] = "Mutated"
	if s.GetCategories()[0] != "Boys" {
		t.Error("GetCategories returned a reference to internal state")
	}

	gotFirst, gotLast, ok := s.GetDateBounds()
	if !ok {
		t.Fatal("GetDateBounds ok = false")
	}
	if !gotFirst.Equal(first) || !gotLast.Equal(last) {
		t.Errorf("GetDateBounds = %v..%v, want %v..%v", gotFirst, gotLast, first, last)
	}

	if s.GetLastUpdated().IsZero() {
		t.Error("LastUpdated should be set after SetDataset")
	}
}

func TestState_Snapshot(t *testing.T) {
	s := NewState()

	snap := &services.Snapshot{
		Result: models.AggregateResult{TotalUsage: 420},
	}
	s.SetSnapshot(snap)

	got := s.GetSnapshot()
	if got == nil {
		t.Fatal("GetSnapshot returned nil")
	}
	if got.Result.TotalUsage != 420 {
		t.Errorf("TotalUsage = %d, want 420", got.Result.TotalUsage)
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewState()

	id := s.AddNotification(NotificationSuccess, "done", time.Minute)
	if id == "" {
		t.Fatal("AddNotification returned empty ID")
	}

	if got := len(s.GetNotifications()); got != 1 {
		t.Fatalf("len(GetNotifications) = %d, want 1", got)
	}

	s.RemoveNotification(id)
	if got := len(s.GetNotifications()); got != 0 {
		t.Errorf("len(GetNotifications) after remove = %d, want 0", got)
	}
}

func TestState_NotificationExpiry(t *testing.T) {
	s := NewState()

	s.AddNotification(NotificationInfo, "fleeting", time.Nanosecond)
	time.Sleep(time.Millisecond)

	if got := len(s.GetNotifications()); got != 0 {
		t.Errorf("expired notification still visible, len = %d", got)
	}

	s.ClearExpiredNotifications()
	s.AddNotification(NotificationInfo, "sticky", 0)
	if got := len(s.GetNotifications()); got != 1 {
		t.Errorf("zero-duration notification should never expire, len = %d", got)
	}
}

func TestState_NotificationCap(t *testing.T) {
	s := NewState()

	for i := 0; i < 15; i++ {
		s.AddNotification(NotificationInfo, "msg", time.Minute)
	}
	if got := len(s.GetNotifications()); got != 10 {
		t.Errorf("len(GetNotifications) = %d, want capped at 10", got)
	}
}

func TestState_LoadingNotification(t *testing.T) {
	s := NewState()

	s.SetLoadingNotification("Loading...")
	notifs := s.GetNotifications()
	if len(notifs) != 1 || notifs[0].ID != LoadingNotificationID {
		t.Fatalf("unexpected notifications: %+v", notifs)
	}

	// Updating reuses the same notification.
	s.SetLoadingNotification("Computing...")
	notifs = s.GetNotifications()
	if len(notifs) != 1 || notifs[0].Message != "Computing..." {
		t.Fatalf("unexpected notifications after update: %+v", notifs)
	}

	s.ClearLoadingNotification()
	if got := len(s.GetNotifications()); got != 0 {
		t.Errorf("len(GetNotifications) after clear = %d, want 0", got)
	}
}

func TestNotificationType_String(t *testing.T) {
	tests := []struct {
		typ  NotificationType
		want string
	}{
		{NotificationSuccess, "success"},
		{NotificationError, "error"},
		{NotificationWarning, "warning"},
		{NotificationInfo, "info"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
