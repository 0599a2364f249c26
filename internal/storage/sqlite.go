//go:build sqlite

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"fitline/internal/model"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func newSQLiteStore(path string) (Store, error) {
	return NewSQLiteStore(path), nil
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveSeries(ctx context.Context, series model.Series) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(series)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO series (name, payload)
		VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET
			payload = excluded.payload
	`, series.Name, payload)
	return err
}

func (s *SQLiteStore) GetSeries(ctx context.Context, name string) (model.Series, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return model.Series{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM series WHERE name = ?`, name).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Series{}, false, nil
		}
		return model.Series{}, false, err
	}

	var series model.Series
	if err := json.Unmarshal(payload, &series); err != nil {
		return model.Series{}, false, fmt.Errorf("decode series %s: %w", name, err)
	}
	return series, true, nil
}

func (s *SQLiteStore) SaveFitRun(ctx context.Context, run model.FitRun) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(run)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO fit_runs (run_id, series, created_at_utc, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			series = excluded.series,
			created_at_utc = excluded.created_at_utc,
			payload = excluded.payload
	`, run.RunID, run.Series, run.CreatedAtUTC, payload)
	return err
}

func (s *SQLiteStore) GetFitRun(ctx context.Context, runID string) (model.FitRun, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return model.FitRun{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM fit_runs WHERE run_id = ?`, runID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FitRun{}, false, nil
		}
		return model.FitRun{}, false, err
	}

	var run model.FitRun
	if err := json.Unmarshal(payload, &run); err != nil {
		return model.FitRun{}, false, fmt.Errorf("decode fit run %s: %w", runID, err)
	}
	return run, true, nil
}

func (s *SQLiteStore) ListFitRuns(ctx context.Context, seriesName string) ([]model.FitRun, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	query := `SELECT payload FROM fit_runs ORDER BY created_at_utc DESC, run_id ASC`
	args := []any{}
	if seriesName != "" {
		query = `SELECT payload FROM fit_runs WHERE series = ? ORDER BY created_at_utc DESC, run_id ASC`
		args = append(args, seriesName)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.FitRun
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var run model.FitRun
		if err := json.Unmarshal(payload, &run); err != nil {
			return nil, fmt.Errorf("decode fit run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS series (
			name TEXT PRIMARY KEY,
			payload BLOB NOT NULL
		);
		CREATE TABLE IF NOT EXISTS fit_runs (
			run_id TEXT PRIMARY KEY,
			series TEXT NOT NULL,
			created_at_utc TEXT NOT NULL,
			payload BLOB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS fit_runs_series ON fit_runs(series);
	`)
	return err
}
