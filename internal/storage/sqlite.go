// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished game on a word pack.
type Run struct {
	ID        int64
	Pack      string
	Score     int
	Words     int
	Duration  time.Duration
	CreatedAt time.Time
}

// PackStats contains aggregated statistics for a pack.
type PackStats struct {
	Pack       string
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalWords int64
	LongestRun time.Duration
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack TEXT NOT NULL,
			score INTEGER NOT NULL,
			words INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pack ON runs(pack);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(pack, score DESC);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(pack string, score, words int, duration time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (pack, score, words, duration_secs) VALUES (?, ?, ?, ?)",
		pack, score, words, int64(duration/time.Second),
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

// TopScores retrieves the best runs for a pack, highest score first.
// A limit of zero or less means 10.
func (s *Store) TopScores(pack string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack, score, words, duration_secs, created_at
		 FROM runs
		 WHERE pack = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		pack, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var secs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Pack, &r.Score, &r.Words, &secs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(secs) * time.Second
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// HighScore returns the highest score for a pack, or 0 if none exist.
func (s *Store) HighScore(pack string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs WHERE pack = ?", pack).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all runs for a pack.
func (s *Store) ClearScores(pack string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE pack = ?", pack); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for one pack. A pack with no runs
// yields zero stats.
func (s *Store) Stats(pack string) (*PackStats, error) {
	stats := &PackStats{Pack: pack}

	var longest int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(words), 0), COALESCE(MAX(duration_secs), 0)
		 FROM runs WHERE pack = ?`,
		pack,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalWords, &longest)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}
	stats.LongestRun = time.Duration(longest) * time.Second

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE pack = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		pack,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}
	return stats, nil
}

// AllStats retrieves statistics for every pack that has been played.
func (s *Store) AllStats() (map[string]*PackStats, error) {
	rows, err := s.db.Query(
		`SELECT pack, COUNT(*), MAX(score), AVG(score), SUM(words), MAX(duration_secs), MAX(created_at)
		 FROM runs
		 GROUP BY pack`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all pack stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PackStats)
	for rows.Next() {
		var st PackStats
		var longest int64
		var lastPlayed any
		if err := rows.Scan(&st.Pack, &st.Runs, &st.HighScore, &st.AvgScore, &st.TotalWords, &longest, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LongestRun = time.Duration(longest) * time.Second
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Pack] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
