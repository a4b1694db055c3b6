package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Persisted document keys. Each key holds one independent JSON value.
const (
	KeyBank        = "bank"
	KeyCategoryMap = "category-map"
	KeyNotes       = "notes"
	KeyAllSessions = "all-sessions"
	KeyLastSession = "last-session"
	KeyTheme       = "theme"
)

// AllKeys lists every document key, in reset order.
var AllKeys = []string{
	KeyBank, KeyCategoryMap, KeyNotes, KeyAllSessions, KeyLastSession, KeyTheme,
}

// Store is a key-value store of JSON documents over a local SQLite file.
// Writes are synchronous and durable; reads are failure-tolerant.
type Store struct {
	db *sql.DB
}

// Open creates a Store backed by the SQLite database at dsn.
// It applies recommended pragmas and creates the documents table.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS documents (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get unmarshals the document at key into dest. A missing row or a value
// that fails to parse leaves dest untouched and returns false; the caller's
// pre-populated fallback stays in effect. Only I/O-level failures surface.
func (s *Store) Get(key string, dest any) bool {
	var raw string
	err := s.db.QueryRow("SELECT value FROM documents WHERE key = ?", key).Scan(&raw)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false
	}
	return true
}

// Put marshals value as JSON and upserts it at key.
func (s *Store) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO documents (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Delete removes the document at key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM documents WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Reset removes every known document key.
func (s *Store) Reset() error {
	var errs []error
	for _, key := range AllKeys {
		if err := s.Delete(key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Raw returns the stored JSON text at key, for pass-through export.
func (s *Store) Raw(key string) (string, bool) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM documents WHERE key = ?", key).Scan(&raw)
	if err != nil {
		return "", false
	}
	return raw, true
}

// applyPragmas configures SQLite for single-user durability.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
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
// 1. QUIZDRILL_DB environment variable
// 2. $XDG_DATA_HOME/quizdrill/quizdrill.db
// 3. ~/.local/share/quizdrill/quizdrill.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("QUIZDRILL_DB"); p != "" {
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

	p := filepath.Join(dataHome, "quizdrill", "quizdrill.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
