// Package storage provides SQLite-based persistence for match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/laserlicht/toweroops/internal/game"
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord represents one finished round against the computer.
type MatchRecord struct {
	ID            int64
	Outcome       string // "won", "lost", "drawn"
	AILevel       string
	Moves         int
	PlayerTower   int
	ComputerTower int
	DurationSecs  int
	CreatedAt     time.Time
}

// Totals holds aggregate win/loss/draw counts.
type Totals struct {
	PlayerWins   int
	ComputerWins int
	Draws        int
}

// Matches returns the total number of recorded rounds.
func (t Totals) Matches() int {
	return t.PlayerWins + t.ComputerWins + t.Draws
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			ai_level TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			player_tower INTEGER NOT NULL DEFAULT 0,
			computer_tower INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_level ON matches(ai_level);
		CREATE INDEX IF NOT EXISTS idx_matches_recent ON matches(created_at DESC);
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

// SaveMatch records a finished round. Returns the ID of the inserted record.
// Running rounds are rejected.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	if rec.Outcome != game.OutcomeWon.String() &&
		rec.Outcome != game.OutcomeLost.String() &&
		rec.Outcome != game.OutcomeDrawn.String() {
		return 0, fmt.Errorf("storage: cannot save match with outcome %q", rec.Outcome)
	}

	result, err := s.db.Exec(
		`INSERT INTO matches
		 (outcome, ai_level, moves, player_tower, computer_tower, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Outcome,
		rec.AILevel,
		rec.Moves,
		rec.PlayerTower,
		rec.ComputerTower,
		rec.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Totals returns aggregate win/loss/draw counts across all recorded matches.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	err := s.db.QueryRow(
		`SELECT
			COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'drawn' THEN 1 ELSE 0 END), 0)
		 FROM matches`,
	).Scan(&t.PlayerWins, &t.ComputerWins, &t.Draws)
	if err != nil {
		return t, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	return t, nil
}

// TotalsByLevel returns aggregate counts grouped by AI level.
func (s *Store) TotalsByLevel() (map[string]Totals, error) {
	rows, err := s.db.Query(
		`SELECT ai_level,
			SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END),
			SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END),
			SUM(CASE WHEN outcome = 'drawn' THEN 1 ELSE 0 END)
		 FROM matches
		 GROUP BY ai_level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query totals by level: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]Totals)
	for rows.Next() {
		var level string
		var t Totals
		if err := rows.Scan(&level, &t.PlayerWins, &t.ComputerWins, &t.Draws); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		totals[level] = t
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return totals, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, outcome, ai_level, moves, player_tower, computer_tower, duration_secs, created_at
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var createdAt any
		if err := rows.Scan(
			&rec.ID,
			&rec.Outcome,
			&rec.AILevel,
			&rec.Moves,
			&rec.PlayerTower,
			&rec.ComputerTower,
			&rec.DurationSecs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			rec.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				rec.CreatedAt = parsed
			}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ClearMatches deletes all recorded matches.
func (s *Store) ClearMatches() error {
	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
