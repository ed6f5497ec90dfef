package store

import (
	"database/sql"
	"time"

	"github.com/user/cloudtune-cli/api"
)

// PlayEntry is one row of the play history.
type PlayEntry struct {
	ID       int64
	SongID   int64
	Name     string
	Artist   string
	PlayedAt time.Time
}

// SaveSession stores the session cookie, replacing any previous one.
func (s *Store) SaveSession(cookie, nickname string) error {
	_, err := s.db.Exec(`
		INSERT INTO session (id, cookie, nickname) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET cookie = excluded.cookie, nickname = excluded.nickname
	`, cookie, nickname)
	return err
}

// LoadSession returns the persisted session cookie and nickname.
// A missing session is not an error; both values are empty.
func (s *Store) LoadSession() (string, string, error) {
	var cookie string
	var nickname sql.NullString
	err := s.db.QueryRow(`SELECT cookie, nickname FROM session WHERE id = 1`).Scan(&cookie, &nickname)
	if err == sql.ErrNoRows {
		return "", "", nil
	}
	if err != nil {
		return "", "", err
	}
	return cookie, nickname.String, nil
}

// ClearSession removes the persisted session.
func (s *Store) ClearSession() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE id = 1`)
	return err
}

// RecordPlay appends a song to the play history.
func (s *Store) RecordPlay(song api.Song) error {
	_, err := s.db.Exec(`
		INSERT INTO history (song_id, name, artist) VALUES (?, ?, ?)
	`, song.ID, song.Name, song.Artist)
	return err
}

// RecentPlays returns the most recent history entries, newest first.
func (s *Store) RecentPlays(limit int) ([]PlayEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, song_id, name, COALESCE(artist, ''), played_at
		FROM history ORDER BY played_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []PlayEntry
	for rows.Next() {
		var e PlayEntry
		if err := rows.Scan(&e.ID, &e.SongID, &e.Name, &e.Artist, &e.PlayedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
