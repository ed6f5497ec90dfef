package api

import "time"

// Song is a single track in the service catalogue.
type Song struct {
	ID       int64
	Name     string
	Artist   string
	Album    string
	Duration time.Duration
}

// Playlist is a named, ordered collection of songs.
type Playlist struct {
	ID    int64
	Name  string
	Songs []Song
}

// QRState is the server-side state of a QR login attempt.
type QRState int

const (
	// QRWaiting means the code has not been scanned yet.
	QRWaiting QRState = iota
	// QRScanned means the code was scanned but not confirmed on the phone.
	QRScanned
	// QRConfirmed means login was confirmed and a session cookie was issued.
	QRConfirmed
	// QRExpired means the code timed out and a new key must be requested.
	QRExpired
)

// wire types for JSON decoding

type qrKeyResponse struct {
	Code   int    `json:"code"`
	UniKey string `json:"unikey"`
}

type qrCheckResponse struct {
	Code     int    `json:"code"`
	Cookie   string `json:"cookie"`
	Nickname string `json:"nickname"`
}

type statusResponse struct {
	Code     int    `json:"code"`
	Nickname string `json:"nickname"`
}

type songJSON struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	DurationMS int64  `json:"duration_ms"`
}

type favoritesResponse struct {
	Code int    `json:"code"`
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// Songs is the track list in playlist order
	Songs []songJSON `json:"songs"`
}

type songURLResponse struct {
	Code int    `json:"code"`
	URL  string `json:"url"`
}
