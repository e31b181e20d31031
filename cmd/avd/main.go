// Package main is the entry point for the AquaVision Dashboard TUI.
// It loads configuration, builds the service manager, and runs the
// Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/app"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/config"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/services"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/ui/tabs/filters"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/ui/tabs/leaderboard"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/ui/tabs/overview"
	"github.com/aquavisionx/aquavision-dashboard-tui/internal/version"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	// 1. Load configuration from .env files and environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize the service manager. This generates (or reloads) the
	// session dataset and starts the categories file watcher.
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	// 3. Create the root Bubble Tea model
	model := app.NewModel(svcManager)

	// 4. Initialize tabs with shared state and services
	state := model.GetState()
	tabs := []app.Tab{
		overview.New(state),    // Tab 0: Overview - KPIs and charts
		leaderboard.New(state), // Tab 1: Leaderboard - category ranking
		filters.New(state),     // Tab 2: Filters - date range and categories
	}
	model.SetTabs(tabs)

	// 5. Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// 6. Create and configure the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`AquaVision Dashboard TUI - Water usage reporting dashboard

Usage:
  avd [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-3             Switch between tabs (Overview, Leaderboard, Filters)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Navigate lists
  Enter           Apply filters / select
  e               Export current view to CSV (Leaderboard tab)
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  DATABASE_PATH    Session dataset store path (default: in-memory)
  WINDOW_DAYS      Days covered by the generated dataset (default: 31)
  USAGE_MIN        Lower usage bound in litres, inclusive (default: 50)
  USAGE_MAX        Upper usage bound in litres, exclusive (default: 200)
  CATEGORIES       Comma-separated category labels (default: Boys,Girls,Staff)
  CATEGORIES_PATH  Optional JSON file with category labels (watched)
  DATASET_SEED     Random seed for the generator (0 = time-based)
  ALERT_THRESHOLD  Desktop alert when total usage exceeds this (0 = off)
  EXPORT_DIR       Directory for CSV exports (default: current directory)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/aquavision/.env
  - ~/.aquavision/.env`)
}
