// Package phistore persists computed acoplanarity runs to SQLite. A run
// records the leg configurations and input provenance; the per-event
// angles are stored alongside so later reporting can re-bin them
// without recomputing the pipeline.
package phistore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS phicp_runs (
	run_id      TEXT PRIMARY KEY,
	created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	leg1        TEXT NOT NULL,
	leg2        TEXT NOT NULL,
	input_path  TEXT,
	event_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS phicp_angles (
	run_id    TEXT NOT NULL,
	event_idx INTEGER NOT NULL,
	angle     REAL NOT NULL,
	PRIMARY KEY (run_id, event_idx),
	FOREIGN KEY (run_id) REFERENCES phicp_runs(run_id)
);
`

// Run is the persisted metadata of one pipeline invocation.
type Run struct {
	ID         string
	CreatedAt  time.Time
	Leg1       string
	Leg2       string
	InputPath  string
	EventCount int
}

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertRun stores a run and its per-event angles in one transaction.
// A missing run ID is filled with a fresh UUID; the (possibly
// generated) ID is returned.
func (s *Store) InsertRun(run *Run, angles []float32) (string, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	run.EventCount = len(angles)

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO phicp_runs (run_id, leg1, leg2, input_path, event_count) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Leg1, run.Leg2, run.InputPath, run.EventCount,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO phicp_angles (run_id, event_idx, angle) VALUES (?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare angles: %w", err)
	}
	defer stmt.Close()
	for i, a := range angles {
		if _, err := stmt.Exec(run.ID, i, float64(a)); err != nil {
			return "", fmt.Errorf("insert angle %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return run.ID, nil
}

// GetRun loads one run's metadata.
func (s *Store) GetRun(id string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT run_id, created_at, leg1, leg2, input_path, event_count FROM phicp_runs WHERE run_id = ?`, id)
	var run Run
	if err := row.Scan(&run.ID, &run.CreatedAt, &run.Leg1, &run.Leg2, &run.InputPath, &run.EventCount); err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return &run, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *Store) ListRuns(limit int) ([]*Run, error) {
	rows, err := s.db.Query(
		`SELECT run_id, created_at, leg1, leg2, input_path, event_count
		 FROM phicp_runs ORDER BY created_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.Leg1, &run.Leg2, &run.InputPath, &run.EventCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// GetAngles loads a run's per-event angles in event order.
func (s *Store) GetAngles(runID string) ([]float32, error) {
	rows, err := s.db.Query(
		`SELECT angle FROM phicp_angles WHERE run_id = ? ORDER BY event_idx`, runID)
	if err != nil {
		return nil, fmt.Errorf("get angles: %w", err)
	}
	defer rows.Close()

	var angles []float32
	for rows.Next() {
		var a float64
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("scan angle: %w", err)
		}
		angles = append(angles, float32(a))
	}
	return angles, rows.Err()
}
