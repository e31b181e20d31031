// Package store manages the session dataset cache backed by SQLite.
// The default DSN is ":memory:", so the dataset lives exactly as long as
// the session; pointing DATABASE_PATH at a file lets a session be resumed
// deliberately.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/models"
)

// Store wraps the SQL database connection with dataset-specific methods.
type Store struct {
	*sql.DB
	path string
}

// New creates a new store and initializes the schema.
func New(path string) (*Store, error) {
	if path == "" {
		path = ":memory:"
	}

	if path != ":memory:" {
		dir := filepath.Dir(path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory SQLite database exists per connection; a single
	// connection keeps the session cache coherent.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{
		DB:   sqlDB,
		path: path,
	}

	if err := s.configure(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	if err := s.createSchema(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return s, nil
}

// Path returns the database path (":memory:" for session-only stores).
func (s *Store) Path() string {
	return s.path
}

// configure sets up database pragmas.
func (s *Store) configure() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}

	for _, pragma := range pragmas {
		if _, err := s.ExecContext(context.Background(), pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	return nil
}

// createSchema creates the usage_records table. The (date, category)
// primary key enforces the dense-grid invariant: one record per pair.
func (s *Store) createSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS usage_records (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		date     TEXT    NOT NULL,
		category TEXT    NOT NULL,
		usage    INTEGER NOT NULL CHECK (usage >= 0),
		UNIQUE (date, category)
	);
	CREATE INDEX IF NOT EXISTS idx_usage_records_date ON usage_records(date);
	`

	if _, err := s.ExecContext(context.Background(), schema); err != nil {
		return fmt.Errorf("failed to create usage_records table: %w", err)
	}
	return nil
}

// SaveDataset replaces the stored dataset with the given records in one
// transaction. Insertion order is preserved via the rowid.
func (s *Store) SaveDataset(ctx context.Context, records []models.UsageRecord) error {
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM usage_records"); err != nil {
		return fmt.Errorf("failed to clear usage_records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO usage_records (date, category, usage) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Day().Format(models.DateFormat), r.Category, r.Usage); err != nil {
			return fmt.Errorf("failed to insert record (%s, %s): %w",
				r.Day().Format(models.DateFormat), r.Category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}

// LoadDataset returns the stored dataset in insertion order, which for a
// generated dataset is date-major, category-minor.
func (s *Store) LoadDataset(ctx context.Context) ([]models.UsageRecord, error) {
	rows, err := s.QueryContext(ctx,
		"SELECT date, category, usage FROM usage_records ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query usage_records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []models.UsageRecord
	for rows.Next() {
		var dateStr, category string
		var usage int
		if err := rows.Scan(&dateStr, &category, &usage); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		day, err := time.Parse(models.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored date %q: %w", dateStr, err)
		}

		records = append(records, models.UsageRecord{
			Date:     day,
			Category: category,
			Usage:    usage,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.QueryRowContext(ctx, "SELECT COUNT(*) FROM usage_records").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}
