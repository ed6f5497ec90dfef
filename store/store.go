// Package store persists the login session and play history in SQLite.
package store

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database holding session and history data.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default database location,
// ~/.local/share/cloudtune/cloudtune.db.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", "cloudtune", "cloudtune.db"), nil
}

// Open opens or creates the SQLite database at the given path.
// Parent directories are created if they don't exist.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs all database migrations.
// Migrations are idempotent (safe to run multiple times).
func migrate(db *sql.DB) error {
	// Single-row session table: the cookie of the active login
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			cookie TEXT NOT NULL,
			nickname TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Play history, one row per started track
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY,
			song_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			artist TEXT,
			played_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}
