package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/services"
)

const (
	// DefaultTickInterval is the default interval between ticks.
	DefaultTickInterval = 2 * time.Second

	// DefaultNotificationDuration is the default duration for notifications.
	DefaultNotificationDuration = 5 * time.Second

	// QuickNotificationDuration is for brief notifications.
	QuickNotificationDuration = 3 * time.Second

	// LongNotificationDuration is for important notifications.
	LongNotificationDuration = 10 * time.Second
)

// tickCmd returns a command that sends a TickMsg after the specified interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// defaultTickCmd returns a command that sends a TickMsg after the default interval.
func defaultTickCmd() tea.Cmd {
	return tickCmd(DefaultTickInterval)
}

// loadInitialData returns a command that publishes the dataset facts and
// runs the first compute pass over the full range.
func loadInitialData(mgr *services.Manager) tea.Cmd {
	return tea.Batch(
		loadDatasetCmd(mgr),
		applyFilterCmd(mgr, mgr.FullRangeEndpoints(), mgr.Categories()),
	)
}

// loadDatasetCmd returns a command that loads the session dataset facts.
func loadDatasetCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		firstDay, lastDay, _ := mgr.DateBounds()
		return DatasetLoadedMsg{
			Categories: mgr.Categories(),
			Size:       len(mgr.Dataset()),
			FirstDay:   firstDay,
			LastDay:    lastDay,
		}
	}
}

// applyFilterCmd returns a command that runs one filter → aggregate pass.
func applyFilterCmd(mgr *services.Manager, endpoints, categories []string) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := mgr.Recompute(endpoints, categories)
		return ResultComputedMsg{Snapshot: snapshot, Err: err}
	}
}

// exportSnapshotCmd returns a command that exports a snapshot as CSV.
func exportSnapshotCmd(mgr *services.Manager, snapshot *services.Snapshot) tea.Cmd {
	return func() tea.Msg {
		path, err := mgr.ExportSnapshot(snapshot)
		return ExportResultMsg{Path: path, Err: err}
	}
}

// subscribeToServicesCmd returns a command that subscribes to service events.
func subscribeToServicesCmd(mgr *services.Manager) tea.Cmd {
	ch, _ := mgr.Subscribe()
	return func() tea.Msg {
		return SubscriptionEventMsg{Channel: ch}
	}
}

// waitForServiceEventCmd returns a command that waits for the next service event.
func waitForServiceEventCmd(ch <-chan services.ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return ServiceEventMsg{Event: event}
	}
}

// WaitForServiceEvent is the public version for use in models.
func WaitForServiceEvent(ch <-chan services.ServiceEvent) tea.Cmd {
	return services.WaitForEvent(ch)
}

// clearNotificationCmd returns a command that removes a notification after a delay.
func clearNotificationCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

// notifySuccessCmd returns a command that adds a success notification.
func notifySuccessCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationSuccess,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyErrorCmd returns a command that adds an error notification.
func notifyErrorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationError,
			Message:  message,
			Duration: LongNotificationDuration,
		}
	}
}

// notifyWarningCmd returns a command that adds a warning notification.
func notifyWarningCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationWarning,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyInfoCmd returns a command that adds an info notification.
func notifyInfoCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationInfo,
			Message:  message,
			Duration: QuickNotificationDuration,
		}
	}
}

// delayedCmd returns a command that sends a message after a delay.
func delayedCmd(delay time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return msg
	})
}

// batchCmds combines multiple commands into one.
func batchCmds(cmds ...tea.Cmd) tea.Cmd {
	return tea.Batch(cmds...)
}

// quitCmd returns a command that quits the application.
func quitCmd() tea.Cmd {
	return tea.Quit
}

// Commands provides a public interface to the command functions.
type Commands struct {
	manager *services.Manager
}

// NewCommands creates a new Commands instance.
func NewCommands(mgr *services.Manager) *Commands {
	return &Commands{manager: mgr}
}

// Tick returns a tick command with the specified interval.
func (c *Commands) Tick(interval time.Duration) tea.Cmd {
	return tickCmd(interval)
}

// DefaultTick returns a tick command with the default interval.
func (c *Commands) DefaultTick() tea.Cmd {
	return defaultTickCmd()
}

// LoadInitialData returns a command that loads all initial data.
func (c *Commands) LoadInitialData() tea.Cmd {
	return loadInitialData(c.manager)
}

// LoadDataset returns a command that loads the session dataset facts.
func (c *Commands) LoadDataset() tea.Cmd {
	return loadDatasetCmd(c.manager)
}

// ApplyFilter returns a command that runs one compute pass.
func (c *Commands) ApplyFilter(endpoints, categories []string) tea.Cmd {
	return applyFilterCmd(c.manager, endpoints, categories)
}

// ExportSnapshot returns a command that exports a snapshot as CSV.
func (c *Commands) ExportSnapshot(snapshot *services.Snapshot) tea.Cmd {
	return exportSnapshotCmd(c.manager, snapshot)
}

// SubscribeToServices returns a command that subscribes to service events.
func (c *Commands) SubscribeToServices() tea.Cmd {
	return subscribeToServicesCmd(c.manager)
}

// NotifySuccess returns a command that adds a success notification.
func (c *Commands) NotifySuccess(message string) tea.Cmd {
	return notifySuccessCmd(message)
}

// NotifyError returns a command that adds an error notification.
func (c *Commands) NotifyError(message string) tea.Cmd {
	return notifyErrorCmd(message)
}

// NotifyWarning returns a command that adds a warning notification.
func (c *Commands) NotifyWarning(message string) tea.Cmd {
	return notifyWarningCmd(message)
}

// NotifyInfo returns a command that adds an info notification.
func (c *Commands) NotifyInfo(message string) tea.Cmd {
	return notifyInfoCmd(message)
}

// ClearNotification returns a command that removes a notification after a delay.
func (c *Commands) ClearNotification(id string, delay time.Duration) tea.Cmd {
	return clearNotificationCmd(id, delay)
}

// Quit returns a command that quits the application.
func (c *Commands) Quit() tea.Cmd {
	return quitCmd()
}

// Delayed returns a command that sends a message after a delay.
func (c *Commands) Delayed(delay time.Duration, msg tea.Msg) tea.Cmd {
	return delayedCmd(delay, msg)
}

// Batch combines multiple commands into one.
func (c *Commands) Batch(cmds ...tea.Cmd) tea.Cmd {
	return batchCmds(cmds...)
}
