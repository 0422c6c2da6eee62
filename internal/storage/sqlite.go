// Package storage keeps simulation batches in SQLite so difficulty tuning runs
// can be compared later. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/squirrel-run/internal/sim"
)

// Store manages the SQLite database connection for simulation traces.
type Store struct {
	db *sql.DB
}

// Batch is one stored `runner sim` invocation.
type Batch struct {
	ID        int64
	Seed      int64
	MaxTicks  int
	Lookahead float64
	Summary   sim.Summary
	CreatedAt time.Time

	// Runs is written by SaveBatch. RecentBatches leaves it nil.
	Runs []sim.Result
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS batches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			max_ticks INTEGER NOT NULL,
			lookahead REAL NOT NULL,
			runs INTEGER NOT NULL,
			mean_score REAL NOT NULL DEFAULT 0,
			max_score INTEGER NOT NULL DEFAULT 0,
			mean_passed REAL NOT NULL DEFAULT 0,
			mean_ticks REAL NOT NULL DEFAULT 0,
			max_speed REAL NOT NULL DEFAULT 0,
			crash_rate REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			batch_id INTEGER NOT NULL REFERENCES batches(id) ON DELETE CASCADE,
			run INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			passed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			speed_multiplier REAL NOT NULL,
			spawn_interval REAL NOT NULL,
			crashed INTEGER NOT NULL,
			PRIMARY KEY (batch_id, run)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBatch records a batch and all of its runs in one transaction.
// Returns the ID of the inserted batch.
func (s *Store) SaveBatch(b Batch) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	sum := b.Summary
	res, err := tx.Exec(
		`INSERT INTO batches
		 (seed, max_ticks, lookahead, runs, mean_score, max_score, mean_passed, mean_ticks, max_speed, crash_rate)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.Seed, b.MaxTicks, b.Lookahead,
		sum.Runs, sum.MeanScore, sum.MaxScore, sum.MeanPassed, sum.MeanTicks, sum.MaxSpeed, sum.CrashRate,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save batch: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO runs
		 (batch_id, run, seed, score, passed, ticks, speed_multiplier, spawn_interval, crashed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare run insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range b.Runs {
		if _, err := stmt.Exec(
			id, r.Run, r.Seed, r.Score, r.Passed, r.Ticks,
			r.SpeedMultiplier, r.SpawnInterval, r.Crashed,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save run %d: %w", r.Run, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit batch: %w", err)
	}
	return id, nil
}

// RecentBatches returns the newest batches first, without their runs.
func (s *Store) RecentBatches(limit int) ([]Batch, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, max_ticks, lookahead, runs, mean_score, max_score,
		        mean_passed, mean_ticks, max_speed, crash_rate, created_at
		 FROM batches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query batches: %w", err)
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		var b Batch
		var createdAt any
		if err := rows.Scan(
			&b.ID, &b.Seed, &b.MaxTicks, &b.Lookahead,
			&b.Summary.Runs, &b.Summary.MeanScore, &b.Summary.MaxScore,
			&b.Summary.MeanPassed, &b.Summary.MeanTicks, &b.Summary.MaxSpeed, &b.Summary.CrashRate,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan batch: %w", err)
		}
		b.CreatedAt = parseTime(createdAt)
		batches = append(batches, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return batches, nil
}

// BatchRuns returns the runs of one batch ordered by run index.
// An unknown batch yields an empty slice.
func (s *Store) BatchRuns(batchID int64) ([]sim.Result, error) {
	rows, err := s.db.Query(
		`SELECT run, seed, score, passed, ticks, speed_multiplier, spawn_interval, crashed
		 FROM runs
		 WHERE batch_id = ?
		 ORDER BY run`,
		batchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var results []sim.Result
	for rows.Next() {
		var r sim.Result
		if err := rows.Scan(
			&r.Run, &r.Seed, &r.Score, &r.Passed, &r.Ticks,
			&r.SpeedMultiplier, &r.SpawnInterval, &r.Crashed,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
