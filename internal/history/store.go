package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Repo is the persistence surface the screens depend on. Load returns
// results in insertion order alongside the number of rows that could not
// be decoded; corrupt rows are skipped, never fatal.
type Repo interface {
	Append(ctx context.Context, r Result) error
	Load(ctx context.Context) ([]Result, int, error)
	Clear(ctx context.Context) error
}

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id         TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	level      TEXT NOT NULL,
	correct    INTEGER NOT NULL,
	total      INTEGER NOT NULL,
	misses     TEXT NOT NULL DEFAULT '[]'
);`

// Store persists quiz results in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies recommended
// pragmas and creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append stores one finished round.
func (s *Store) Append(ctx context.Context, r Result) error {
	misses, err := json.Marshal(r.Misses)
	if err != nil {
		return fmt.Errorf("encode misses: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO results (id, created_at, level, correct, total, misses) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.UTC().Format(time.RFC3339Nano), r.Level, r.Correct, r.Total, string(misses),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// Load returns all stored results in insertion order. Rows whose
// timestamp or misses column fails to decode are skipped and counted in
// the second return value.
func (s *Store) Load(ctx context.Context) ([]Result, int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, level, correct, total, misses FROM results ORDER BY rowid`,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	skipped := 0
	for rows.Next() {
		var (
			r         Result
			createdAt string
			misses    string
		)
		if err := rows.Scan(&r.ID, &createdAt, &r.Level, &r.Correct, &r.Total, &misses); err != nil {
			skipped++
			continue
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			skipped++
			continue
		}
		if err := json.Unmarshal([]byte(misses), &r.Misses); err != nil {
			skipped++
			continue
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("scan results: %w", err)
	}
	return results, skipped, nil
}

// Clear deletes all stored results.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM results`); err != nil {
		return fmt.Errorf("clear results: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. KUISKATA_DB environment variable
// 2. $XDG_DATA_HOME/kuiskata/kuiskata.db
// 3. ~/.local/share/kuiskata/kuiskata.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("KUISKATA_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "kuiskata", "kuiskata.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
