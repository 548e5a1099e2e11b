// Package storage provides SQLite-based persistence for high scores and
// finished runs. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultGameID is the key scores are stored under.
const DefaultGameID = "mango"

// Store manages the SQLite database connection for score persistence.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db *sql.DB
}

// RunEntry represents one finished game.
type RunEntry struct {
	ID        int64
	RunID     uuid.UUID
	GameID    string
	Score     int
	Length    int    // Body length at game over
	Character string // Glyph the run was played with
	CreatedAt time.Time
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			game_id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL DEFAULT 0,
			character TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
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

// HighScore returns the stored high score for the given game.
// Returns 0 if none has been recorded.
func (s *Store) HighScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM high_scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SetHighScore records score as the high score unless a higher one is
// already stored. The stored value never decreases.
func (s *Store) SetHighScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (game_id, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET
			score = excluded.score,
			updated_at = excluded.updated_at
		 WHERE excluded.score > high_scores.score`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// SaveRun records a finished game. A zero RunID gets a fresh UUID.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	if run.RunID == uuid.Nil {
		run.RunID = uuid.New()
	}
	if run.GameID == "" {
		run.GameID = DefaultGameID
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (run_id, game_id, score, length, character) VALUES (?, ?, ?, ?, ?)",
		run.RunID.String(), run.GameID, run.Score, run.Length, run.Character,
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

// TopRuns retrieves the top N runs for the given game.
// Results are ordered by score descending.
func (s *Store) TopRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, score, length, character, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var runID string
		var createdAt any
		if err := rows.Scan(&e.ID, &runID, &e.GameID, &e.Score, &e.Length, &e.Character, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if e.RunID, err = uuid.Parse(runID); err != nil {
			return nil, fmt.Errorf("storage: bad run id %q: %w", runID, err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearScores deletes the high score and all runs for the given game.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	if _, err := tx.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM high_scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	LongestRun int
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(score), 0), COALESCE(MAX(length), 0), MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.AvgScore, &stats.LongestRun, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	if stats.HighScore, err = s.HighScore(gameID); err != nil {
		return nil, err
	}
	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
