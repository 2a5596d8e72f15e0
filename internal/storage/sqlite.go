// Package storage provides SQLite-based persistence for play-through
// scores and per-level completion records.
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

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a finished play-through of a level pack.
type ScoreEntry struct {
	ID        int64
	PackID    string
	Score     int
	CreatedAt time.Time
}

// Completion represents the best recorded result for one level.
type Completion struct {
	ID        int64
	PackID    string
	LevelID   string
	Moves     int
	Pushes    int
	Score     int
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_pack_id ON scores(pack_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(pack_id, score DESC);

		CREATE TABLE IF NOT EXISTS completed_levels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack_id TEXT NOT NULL,
			level_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			pushes INTEGER NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(pack_id, level_id)
		);
		CREATE INDEX IF NOT EXISTS idx_completed_pack ON completed_levels(pack_id);
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

// SaveScore records a finished play-through score for the given pack.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(packID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (pack_id, score) VALUES (?, ?)",
		packID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given pack.
// Results are ordered by score descending.
func (s *Store) TopScores(packID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack_id, score, created_at
		 FROM scores
		 WHERE pack_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		packID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PackID, &e.Score, &createdAt); err != nil {
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

// HighScore returns the highest play-through score for the given pack.
// Returns 0 if no scores exist.
func (s *Store) HighScore(packID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE pack_id = ?",
		packID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores and completion records for the given pack.
func (s *Store) ClearScores(packID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE pack_id = ?", packID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM completed_levels WHERE pack_id = ?", packID); err != nil {
		return fmt.Errorf("storage: cannot clear completions: %w", err)
	}
	return nil
}

// RecordCompletion upserts the result for one level, keeping the best
// score (and on ties the lower move count).
func (s *Store) RecordCompletion(packID, levelID string, moves, pushes, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO completed_levels (pack_id, level_id, moves, pushes, score)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(pack_id, level_id) DO UPDATE SET
			moves = excluded.moves,
			pushes = excluded.pushes,
			score = excluded.score,
			created_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > completed_levels.score
		    OR (excluded.score = completed_levels.score AND excluded.moves < completed_levels.moves)`,
		packID, levelID, moves, pushes, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record completion: %w", err)
	}
	return nil
}

// Completions retrieves all completion records for the given pack,
// ordered by level ID.
func (s *Store) Completions(packID string) ([]Completion, error) {
	rows, err := s.db.Query(
		`SELECT id, pack_id, level_id, moves, pushes, score, created_at
		 FROM completed_levels
		 WHERE pack_id = ?
		 ORDER BY level_id`,
		packID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var results []Completion
	for rows.Next() {
		var c Completion
		var createdAt any
		if err := rows.Scan(&c.ID, &c.PackID, &c.LevelID, &c.Moves, &c.Pushes, &c.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseCreatedAt(createdAt)
		results = append(results, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// CompletedLevelIDs returns the set of completed level IDs for a pack.
func (s *Store) CompletedLevelIDs(packID string) (map[string]bool, error) {
	completions, err := s.Completions(packID)
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(completions))
	for _, c := range completions {
		done[c.LevelID] = true
	}
	return done, nil
}

// parseCreatedAt handles both time.Time and string values the driver
// may return for DATETIME columns.
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
