// Package services provides service orchestration for the TUI: session
// dataset lifecycle, filter/aggregate recomputation, categories file
// watching, and usage alerts.
package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/gen2brain/beeep"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/config"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/engine"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/export"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/logger"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/models"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/store"
)

type (
	// DatasetReadyEvent is emitted once the session dataset is available.
	DatasetReadyEvent struct {
		Records    []models.UsageRecord
		Categories []string
	}

	// ResultEvent is emitted after each recompute pass.
	ResultEvent struct {
		Snapshot *Snapshot
	}

	// CategoriesFileChangedEvent is emitted when the watched categories
	// file is edited. The in-session dataset stays immutable; the change
	// takes effect on the next session.
	CategoriesFileChangedEvent struct {
		Path string
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (DatasetReadyEvent) isServiceEvent()          {}
func (ResultEvent) isServiceEvent()                {}
func (CategoriesFileChangedEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()                 {}

// Snapshot is the outcome of one successful recompute pass: the effective
// criteria, the filtered rows, and every derived metric. It lives until
// the next pass.
type Snapshot struct {
	Criteria     models.FilterCriteria
	Records      []models.UsageRecord
	Result       models.AggregateResult
	UsedFallback bool
}

// Manager owns the session dataset and serves recompute requests.
type Manager struct {
	mu            sync.RWMutex
	cfg           *config.Config
	store         *store.Store
	dataset       []models.UsageRecord
	categories    []string
	watcher       *fsnotify.Watcher
	eventChan     chan ServiceEvent
	stopChan      chan struct{}
	subscribers   []chan<- ServiceEvent
	debounceTimer *time.Timer
	alerted       bool
}

// NewManager creates a new service manager. The dataset is generated at
// most once per session: a non-empty store is reloaded as-is, otherwise a
// fresh dataset is generated and persisted to the store.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{
		cfg:       cfg,
		eventChan: make(chan ServiceEvent, 100),
		stopChan:  make(chan struct{}),
	}

	var err error
	m.store, err = store.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	if err := m.ensureDataset(); err != nil {
		_ = m.store.Close()
		return nil, err
	}

	if cfg.CategoriesPath != "" {
		if err := m.startWatcher(cfg.CategoriesPath); err != nil {
			logger.Warn("categories file watcher unavailable", "error", err)
		}
	}

	return m, nil
}

// ensureDataset loads or generates the session dataset exactly once.
func (m *Manager) ensureDataset() error {
	ctx := context.Background()

	n, err := m.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect session store: %w", err)
	}

	if n > 0 {
		records, err := m.store.LoadDataset(ctx)
		if err != nil {
			return fmt.Errorf("failed to reload session dataset: %w", err)
		}
		m.dataset = records
		logger.Info("reloaded session dataset", "records", len(records))
	} else {
		records := engine.Generate(engine.GenerateOptions{
			Now:        time.Now(),
			Days:       m.cfg.WindowDays,
			Categories: m.cfg.Categories,
			MinUsage:   m.cfg.UsageMin,
			MaxUsage:   m.cfg.UsageMax,
			Seed:       m.cfg.DatasetSeed,
		})
		if err := m.store.SaveDataset(ctx, records); err != nil {
			return fmt.Errorf("failed to persist session dataset: %w", err)
		}
		m.dataset = records
		logger.Info("generated session dataset", "records", len(records), "days", m.cfg.WindowDays)
	}

	m.categories = models.Categories(m.dataset)
	return nil
}

// Dataset returns a copy of the session dataset.
func (m *Manager) Dataset() []models.UsageRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]models.UsageRecord, len(m.dataset))
	copy(records, m.dataset)
	return records
}

// Categories returns the category domain derived from the dataset, in
// first-encounter order.
func (m *Manager) Categories() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cats := make([]string, len(m.categories))
	copy(cats, m.categories)
	return cats
}

// DateBounds returns the dataset's first and last dates.
func (m *Manager) DateBounds() (minDay, maxDay time.Time, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return models.DateBounds(m.dataset)
}

// Recompute runs one full filter → aggregate pass against the session
// dataset. A malformed date range returns an error wrapping
// engine.ErrInvalidDateRange and produces no snapshot; every other input
// resolves to a defined snapshot.
func (m *Manager) Recompute(endpoints []string, selected []string) (*Snapshot, error) {
	dateRange, err := engine.ParseDateRange(endpoints)
	if err != nil {
		return nil, err
	}

	categories, fellBack := engine.NormalizeCategories(selected)
	criteria := models.FilterCriteria{Range: dateRange, Categories: categories}

	m.mu.RLock()
	dataset := m.dataset
	m.mu.RUnlock()

	filtered := engine.Filter(dataset, criteria)
	result := engine.Aggregate(filtered)

	snapshot := &Snapshot{
		Criteria:     criteria,
		Records:      filtered,
		Result:       result,
		UsedFallback: fellBack,
	}

	m.checkAlert(result.TotalUsage)
	m.broadcast(ResultEvent{Snapshot: snapshot})

	return snapshot, nil
}

// FullRangeEndpoints returns endpoint strings spanning the whole dataset,
// used for the initial recompute pass.
func (m *Manager) FullRangeEndpoints() []string {
	minDay, maxDay, ok := m.DateBounds()
	if !ok {
		return nil
	}
	return []string{
		minDay.Format(models.DateFormat),
		maxDay.Format(models.DateFormat),
	}
}

// ExportSnapshot writes the snapshot's leaderboard and filtered records
// as CSV files into the configured export directory.
func (m *Manager) ExportSnapshot(snapshot *Snapshot) (string, error) {
	if snapshot == nil {
		return "", fmt.Errorf("nothing to export")
	}
	return export.Snapshot(m.cfg.ExportDir, snapshot.Result.Leaderboard, snapshot.Records)
}

// checkAlert fires a desktop notification the first time a recomputed
// total exceeds the configured threshold.
func (m *Manager) checkAlert(total int) {
	if m.cfg.AlertThreshold <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.alerted || total <= m.cfg.AlertThreshold {
		return
	}
	m.alerted = true

	title := "High Water Usage"
	body := fmt.Sprintf("Selected usage is %d litres (threshold %d)", total, m.cfg.AlertThreshold)
	_ = beeep.Notify(title, body, "")
}

// startWatcher watches the categories file directory for edits.
func (m *Manager) startWatcher(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher

	// Watch the directory to catch file creation and editor rename dances.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		m.watcher = nil
		return err
	}

	go m.watchLoop(path)
	return nil
}

// watchLoop handles file system events with debouncing.
func (m *Manager) watchLoop(path string) {
	const debounceInterval = 100 * time.Millisecond

	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filepath.Base(path) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				m.mu.Lock()
				if m.debounceTimer != nil {
					m.debounceTimer.Stop()
				}
				m.debounceTimer = time.AfterFunc(debounceInterval, func() {
					m.broadcast(CategoriesFileChangedEvent{Path: path})
				})
				m.mu.Unlock()
			}

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			m.broadcast(ErrorEvent{Service: "categories-watch", Error: err})

		case <-m.stopChan:
			return
		}
	}
}

// Subscribe registers a new event subscriber channel.
func (m *Manager) Subscribe() (chan ServiceEvent, func()) {
	ch := make(chan ServiceEvent, 100)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	unsubscribe := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, sub := range m.subscribers {
			if sub == (chan<- ServiceEvent)(ch) {
				m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
				break
			}
		}
	}

	return ch, unsubscribe
}

// broadcast sends an event to the main channel and all subscribers.
// Slow consumers drop events rather than block a recompute pass.
func (m *Manager) broadcast(event ServiceEvent) {
	select {
	case m.eventChan <- event:
	default:
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
		}
	}
}

// Events returns the main service event channel.
func (m *Manager) Events() <-chan ServiceEvent {
	return m.eventChan
}

// WaitForEvent returns a Bubble Tea command that waits for the next event
// on the given channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return event
	}
}

// Close shuts down the watcher and the session store.
func (m *Manager) Close() error {
	close(m.stopChan)

	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			logger.Error("failed to close categories watcher", "error", err)
		}
	}

	if m.store != nil {
		if err := m.store.Close(); err != nil {
			return fmt.Errorf("failed to close session store: %w", err)
		}
	}
	return nil
}
