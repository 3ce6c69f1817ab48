// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tictactoe/internal/config"
)

// Store manages the SQLite database connection for the results ledger.
type Store struct {
	db *sql.DB
}

// GameResult is one finished game.
type GameResult struct {
	ID        int64
	Winner    string // "X", "O", or empty for a draw
	Moves     []int  // Cells in play order
	Source    string // "local" or "ssh:<user>"
	CreatedAt time.Time
}

// Draw reports whether the game ended without a winner.
func (r GameResult) Draw() bool {
	return r.Winner == ""
}

// Tally aggregates every recorded result.
type Tally struct {
	XWins int
	OWins int
	Draws int
}

// Total returns the number of recorded games.
func (t Tally) Total() int {
	return t.XWins + t.OWins + t.Draws
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
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
			winner TEXT NOT NULL DEFAULT '',
			moves TEXT NOT NULL,
			move_count INTEGER NOT NULL,
			source TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_winner ON results(winner);
		CREATE INDEX IF NOT EXISTS idx_results_source ON results(source);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r GameResult) (int64, error) {
	if r.Winner != "" && r.Winner != "X" && r.Winner != "O" {
		return 0, fmt.Errorf("storage: invalid winner %q", r.Winner)
	}

	res, err := s.db.Exec(
		"INSERT INTO results (winner, moves, move_count, source) VALUES (?, ?, ?, ?)",
		r.Winner, encodeMoves(r.Moves), len(r.Moves), r.Source,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results, newest first.
func (s *Store) RecentResults(limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, winner, moves, source, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var r GameResult
		var moves string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Winner, &moves, &r.Source, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.Moves, err = decodeMoves(moves)
		if err != nil {
			return nil, fmt.Errorf("storage: result %d: %w", r.ID, err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Tally counts wins per mark and draws across all results.
func (s *Store) Tally() (Tally, error) {
	var t Tally
	rows, err := s.db.Query("SELECT winner, COUNT(*) FROM results GROUP BY winner")
	if err != nil {
		return t, fmt.Errorf("storage: cannot query tally: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var winner string
		var n int
		if err := rows.Scan(&winner, &n); err != nil {
			return t, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		switch winner {
		case "X":
			t.XWins = n
		case "O":
			t.OWins = n
		default:
			t.Draws += n
		}
	}

	if err := rows.Err(); err != nil {
		return t, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return t, nil
}

// ClearResults deletes every recorded result.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func encodeMoves(moves []int) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = strconv.Itoa(m)
	}
	return strings.Join(parts, ",")
}

func decodeMoves(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	moves := make([]int, len(parts))
	for i, p := range parts {
		m, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("malformed moves %q: %w", s, err)
		}
		moves[i] = m
	}
	return moves, nil
}

// parseTime handles the driver returning either time.Time or a string.
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
