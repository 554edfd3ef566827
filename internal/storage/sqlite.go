// Package storage persists finished session results in SQLite.
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

// Session outcomes as stored in the results table. Quit covers endless
// sessions and timed sessions abandoned before the countdown ran out.
const (
	OutcomeClear = "clear"
	OutcomeOver  = "over"
	OutcomeQuit  = "quit"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished session.
type Result struct {
	ID        int64
	Mode      string // game mode ID, e.g. "crossing" or "crossing_endless"
	Score     int
	Outcome   string
	CreatedAt time.Time
}

// Stats contains aggregated statistics for one game mode.
type Stats struct {
	Mode       string
	Sessions   int
	Cleared    int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_mode ON results(mode);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(mode, score DESC);
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

// SaveResult records one finished session. Returns the inserted row ID.
func (s *Store) SaveResult(mode string, score int, outcome string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO results (mode, score, outcome) VALUES (?, ?, ?)",
		mode, score, outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopResults retrieves the best N results for a mode, highest score first.
func (s *Store) TopResults(mode string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT id, mode, score, outcome, created_at
		 FROM results
		 WHERE mode = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		mode, limit,
	)
}

// AllResults retrieves every result for a mode, highest score first.
func (s *Store) AllResults(mode string) ([]Result, error) {
	return s.queryResults(
		`SELECT id, mode, score, outcome, created_at
		 FROM results
		 WHERE mode = ?
		 ORDER BY score DESC`,
		mode,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []Result
	for rows.Next() {
		var e Result
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &e.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score for a mode, 0 if none exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE mode = ?",
		mode,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearResults deletes all results for a mode.
func (s *Store) ClearResults(mode string) error {
	if _, err := s.db.Exec("DELETE FROM results WHERE mode = ?", mode); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// ModeStats retrieves aggregated statistics for one game mode.
func (s *Store) ModeStats(mode string) (*Stats, error) {
	stats := &Stats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0)
		 FROM results WHERE mode = ?`,
		OutcomeClear, mode,
	).Scan(&stats.Sessions, &stats.Cleared, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE mode = ? ORDER BY created_at DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves statistics for every mode that has been played.
func (s *Store) AllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        MAX(score), AVG(score), MAX(created_at)
		 FROM results
		 GROUP BY mode`,
		OutcomeClear,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Mode, &st.Sessions, &st.Cleared, &st.HighScore, &st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseCreatedAt(lastPlayed)
		stats[st.Mode] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseCreatedAt handles the driver returning DATETIME as either time.Time
// or its string form.
func parseCreatedAt(v any) time.Time {
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
