// Package export writes the current dashboard view to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/aquavisionx/aquavision-dashboard-tui/internal/models"
)

// WriteLeaderboard writes the leaderboard (rank, category, total litres)
// in ascending order to w.
func WriteLeaderboard(w io.Writer, leaderboard []models.CategoryTotal) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"rank", "category", "total_litres"}); err != nil {
		return fmt.Errorf("failed to write leaderboard header: %w", err)
	}
	for i, ct := range leaderboard {
		row := []string{strconv.Itoa(i + 1), ct.Category, strconv.Itoa(ct.Total)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write leaderboard row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteRecords writes filtered usage records (date, category, litres) to w.
func WriteRecords(w io.Writer, records []models.UsageRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"date", "category", "usage_litres"}); err != nil {
		return fmt.Errorf("failed to write records header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Day().Format(models.DateFormat), r.Category, strconv.Itoa(r.Usage)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Snapshot writes the leaderboard and the filtered records as two
// timestamped CSV files in dir and returns the leaderboard path.
func Snapshot(dir string, leaderboard []models.CategoryTotal, records []models.UsageRecord) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	stamp := time.Now().Format("20060102-150405")

	lbPath := filepath.Join(dir, fmt.Sprintf("leaderboard-%s.csv", stamp))
	if err := writeFile(lbPath, func(w io.Writer) error {
		return WriteLeaderboard(w, leaderboard)
	}); err != nil {
		return "", err
	}

	recPath := filepath.Join(dir, fmt.Sprintf("usage-%s.csv", stamp))
	if err := writeFile(recPath, func(w io.Writer) error {
		return WriteRecords(w, records)
	}); err != nil {
		return "", err
	}

	return lbPath, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
