package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/services"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// StartLoadingMsg signals that a resource is starting to load.
type StartLoadingMsg struct {
	Resource string
}

// StopLoadingMsg signals that a resource has finished loading.
type StopLoadingMsg struct {
	Resource string
}

// DatasetLoadedMsg carries the immutable facts about the session dataset.
type DatasetLoadedMsg struct {
	Categories []string
	Size       int
	FirstDay   time.Time
	LastDay    time.Time
}

// ApplyFilterMsg requests a filter → aggregate pass with the given raw
// inputs. Endpoints are date strings exactly as the user entered them.
type ApplyFilterMsg struct {
	Endpoints  []string
	Categories []string
}

// ResetFilterMsg requests a pass over the full dataset range with every
// category selected.
type ResetFilterMsg struct{}

// ResultComputedMsg contains the outcome of a compute pass. Err is set
// when the date range failed validation, in which case Snapshot is nil
// and the previous snapshot stays on screen.
type ResultComputedMsg struct {
	Snapshot *services.Snapshot
	Err      error
}

// ExportRequestMsg requests exporting the current snapshot as CSV.
type ExportRequestMsg struct{}

// ExportResultMsg contains the result of an export operation.
type ExportResultMsg struct {
	Path string
	Err  error
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}

// DelayedMsg wraps a message to be sent after a delay.
type DelayedMsg struct {
	Delay time.Duration
	Msg   tea.Msg
}
