// Package storage persists finished breakout runs in SQLite.
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

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished session.
type RunRecord struct {
	ID            int64
	GameID        string
	Score         int
	Outcome       string // "win" or "loss"
	BlocksCleared int
	BallsLost     int
	Ticks         int
	CreatedAt     time.Time
}

// RecordFromSummary converts a game's run summary into a record.
func RecordFromSummary(s core.RunSummary) RunRecord {
	return RunRecord{
		GameID:        s.GameID,
		Score:         s.Score,
		Outcome:       s.Outcome(),
		BlocksCleared: s.BlocksCleared,
		BallsLost:     s.BallsLost,
		Ticks:         s.Ticks,
	}
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
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			blocks_cleared INTEGER NOT NULL DEFAULT 0,
			balls_lost INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.Outcome == "" {
		return 0, errors.New("storage: run outcome is required")
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (game_id, score, outcome, blocks_cleared, balls_lost, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Score, r.Outcome, r.BlocksCleared, r.BallsLost, r.Ticks,
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

// TopRuns retrieves the best N runs for the given game, highest score
// first. Equal scores are ordered by fewer ticks.
func (s *Store) TopRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, outcome, blocks_cleared, balls_lost, ticks, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, ticks ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Outcome, &r.BlocksCleared, &r.BallsLost, &r.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no runs exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Runs       int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a game.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.Wins, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and the text form SQLite returns for
// CURRENT_TIMESTAMP.
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
