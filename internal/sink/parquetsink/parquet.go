// Package parquetsink persists the three run tables as parquet files and
// reads them back losslessly.
package parquetsink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/model"
	"github.com/scthornton/analytics-data-gen-parquet/internal/sink"
)

// Output file names.
const (
	EventsFile   = sink.EventsTable + ".parquet"
	DailyFile    = sink.DailyTable + ".parquet"
	SessionsFile = sink.SessionsTable + ".parquet"
)

const dirPermission = 0o755

// Store writes the run tables into a directory, one parquet file per table.
type Store struct {
	dir string
}

// New creates a parquet store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// WriteAll writes the three tables. Empty tables still produce files with the
// full column schema so readers see a valid, empty dataset.
func (s *Store) WriteAll(_ context.Context, tables sink.Tables) error {
	if err := os.MkdirAll(s.dir, dirPermission); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := writeTable(filepath.Join(s.dir, EventsFile), tables.Events); err != nil {
		return err
	}
	if err := writeTable(filepath.Join(s.dir, DailyFile), tables.Daily); err != nil {
		return err
	}
	return writeTable(filepath.Join(s.dir, SessionsFile), tables.Sessions)
}

// EventsPath returns the path the events table is written to.
func (s *Store) EventsPath() string { return filepath.Join(s.dir, EventsFile) }

// DailyPath returns the path the daily metrics table is written to.
func (s *Store) DailyPath() string { return filepath.Join(s.dir, DailyFile) }

// SessionsPath returns the path the session metrics table is written to.
func (s *Store) SessionsPath() string { return filepath.Join(s.dir, SessionsFile) }

func writeTable[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := parquet.NewGenericWriter[T](f)
	if len(rows) > 0 {
		if _, err := w.Write(rows); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close writer for %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// ReadEvents reads an events table back, types preserved.
func ReadEvents(path string) ([]model.Event, error) {
	return readTable[model.Event](path)
}

// ReadDaily reads a daily_user_metrics table back.
func ReadDaily(path string) ([]model.DailyUserMetric, error) {
	return readTable[model.DailyUserMetric](path)
}

// ReadSessions reads a session_metrics table back.
func ReadSessions(path string) ([]model.SessionMetric, error) {
	return readTable[model.SessionMetric](path)
}

func readTable[T any](path string) ([]T, error) {
	rows, err := parquet.ReadFile[T](path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}
