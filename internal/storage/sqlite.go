// Package storage provides SQLite-based persistence for benchmark runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for benchmark persistence.
type Store struct {
	db *sql.DB
}

// BenchRun is one recorded benchmark run of the collision engine.
type BenchRun struct {
	ID         int64
	Preset     string
	Seed       uint64
	Entities   int
	Workers    int
	Ticks      int
	Contacts   int64 // total contacts reported across all ticks
	DurationMS int64 // wall time for the whole run, in milliseconds
	CreatedAt  time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS bench_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset TEXT NOT NULL,
			seed INTEGER NOT NULL,
			entities INTEGER NOT NULL,
			workers INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			contacts INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_bench_runs_preset ON bench_runs(preset);
		CREATE INDEX IF NOT EXISTS idx_bench_runs_recent ON bench_runs(created_at DESC);
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

// SaveRun records a benchmark run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run BenchRun) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO bench_runs (preset, seed, entities, workers, ticks, contacts, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Preset, int64(run.Seed), run.Entities, run.Workers, run.Ticks,
		run.Contacts, run.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs for the given preset.
// An empty preset returns runs for every preset.
func (s *Store) RecentRuns(preset string, limit int) ([]BenchRun, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, preset, seed, entities, workers, ticks, contacts, duration_ms, created_at
	          FROM bench_runs`
	args := []any{}
	if preset != "" {
		query += " WHERE preset = ?"
		args = append(args, preset)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []BenchRun
	for rows.Next() {
		var r BenchRun
		var seed int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Preset, &seed, &r.Entities, &r.Workers,
			&r.Ticks, &r.Contacts, &r.DurationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Seed = uint64(seed)
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRun returns the fastest recorded run for the given preset, or nil if
// none exist.
func (s *Store) BestRun(preset string) (*BenchRun, error) {
	var r BenchRun
	var seed int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, preset, seed, entities, workers, ticks, contacts, duration_ms, created_at
		 FROM bench_runs
		 WHERE preset = ?
		 ORDER BY duration_ms ASC
		 LIMIT 1`,
		preset,
	).Scan(&r.ID, &r.Preset, &seed, &r.Entities, &r.Workers,
		&r.Ticks, &r.Contacts, &r.DurationMS, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	r.Seed = uint64(seed)
	r.CreatedAt = parseTimestamp(createdAt)

	return &r, nil
}

// ClearRuns deletes all runs for the given preset.
func (s *Store) ClearRuns(preset string) error {
	_, err := s.db.Exec("DELETE FROM bench_runs WHERE preset = ?", preset)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTimestamp converts a scanned created_at column, which the driver may
// return as time.Time or string, into a time.Time.
func parseTimestamp(v any) time.Time {
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
