// Package api provides the HTTP client for the cloud music service.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// SessionStore persists the login session between runs.
// Implemented by store.Store; kept as an interface so the client
// can be tested without a database.
type SessionStore interface {
	SaveSession(cookie, nickname string) error
	LoadSession() (cookie, nickname string, err error)
	ClearSession() error
}

// Client talks to the music service API. It is shared between the TUI
// controller and background pollers, so every exported method acquires
// the internal guard for the duration of one logical operation.
type Client struct {
	mu sync.Mutex

	baseURL string
	http    *http.Client
	session SessionStore

	cookie    string
	nickname  string
	loggedIn  bool
	favorites *Playlist
}

// New creates a client for the given API base URL. If a persisted
// session exists in the store it is loaded, but not yet validated;
// call LoginStatus to confirm the cookie is still accepted.
func New(baseURL string, session SessionStore) *Client {
	c := &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		session: session,
	}
	if session != nil {
		if cookie, nickname, err := session.LoadSession(); err == nil && cookie != "" {
			c.cookie = cookie
			c.nickname = nickname
			c.loggedIn = true
		}
	}
	return c
}

// IsLogin reports whether the client holds an authenticated session.
func (c *Client) IsLogin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loggedIn
}

// Nickname returns the display name of the logged-in user, if any.
func (c *Client) Nickname() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nickname
}

// QRKey requests a fresh QR login key from the service.
func (c *Client) QRKey(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var resp qrKeyResponse
	if err := c.getJSON(ctx, "/api/login/qr/key", &resp); err != nil {
		return "", fmt.Errorf("qr key: %w", err)
	}
	if resp.UniKey == "" {
		return "", fmt.Errorf("qr key: empty key (code %d)", resp.Code)
	}
	return resp.UniKey, nil
}

// QRCheck polls the scan state of a QR login key. On confirmation the
// session cookie is captured and persisted.
func (c *Client) QRCheck(ctx context.Context, key string) (QRState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var resp qrCheckResponse
	if err := c.getJSON(ctx, "/api/login/qr/check?key="+key, &resp); err != nil {
		return QRWaiting, fmt.Errorf("qr check: %w", err)
	}

	switch resp.Code {
	case 801:
		return QRWaiting, nil
	case 802:
		return QRScanned, nil
	case 803:
		// Confirmed: the response carries the session cookie
		c.cookie = resp.Cookie
		c.nickname = resp.Nickname
		c.loggedIn = true
		if c.session != nil {
			if err := c.session.SaveSession(c.cookie, c.nickname); err != nil {
				return QRConfirmed, fmt.Errorf("persist session: %w", err)
			}
		}
		return QRConfirmed, nil
	case 800:
		return QRExpired, nil
	default:
		return QRWaiting, fmt.Errorf("qr check: unexpected code %d", resp.Code)
	}
}

// LoginStatus validates the current session cookie against the service
// and refreshes the login flag accordingly.
func (c *Client) LoginStatus(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cookie == "" {
		c.loggedIn = false
		return false, nil
	}

	var resp statusResponse
	if err := c.getJSON(ctx, "/api/login/status", &resp); err != nil {
		return false, fmt.Errorf("login status: %w", err)
	}
	c.loggedIn = resp.Code == 200
	if c.loggedIn && resp.Nickname != "" {
		c.nickname = resp.Nickname
	}
	return c.loggedIn, nil
}

// Logout invalidates the session on the server and clears local state.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Best effort on the server side; local state is cleared regardless.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/logout", nil)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	c.addCookie(req)
	if resp, err := c.http.Do(req); err == nil {
		resp.Body.Close()
	}

	c.cookie = ""
	c.nickname = ""
	c.loggedIn = false
	c.favorites = nil
	if c.session != nil {
		if err := c.session.ClearSession(); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	return nil
}

// SetCookie installs a session cookie obtained out of band (cookie
// login via the CLI) without contacting the service.
func (c *Client) SetCookie(cookie, nickname string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cookie = cookie
	c.nickname = nickname
	c.loggedIn = cookie != ""
}

// RefreshFavorites fetches the user's favorite playlist and caches it.
func (c *Client) RefreshFavorites(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var resp favoritesResponse
	if err := c.getJSON(ctx, "/api/user/favorites", &resp); err != nil {
		return fmt.Errorf("favorites: %w", err)
	}
	if resp.Code != 200 {
		return fmt.Errorf("favorites: unexpected code %d", resp.Code)
	}

	pl := &Playlist{ID: resp.ID, Name: resp.Name}
	for _, s := range resp.Songs {
		pl.Songs = append(pl.Songs, Song{
			ID:       s.ID,
			Name:     s.Name,
			Artist:   s.Artist,
			Album:    s.Album,
			Duration: time.Duration(s.DurationMS) * time.Millisecond,
		})
	}
	c.favorites = pl
	return nil
}

// UserFavoriteSonglist returns the cached favorite playlist, if it has
// been fetched. It never touches the network.
func (c *Client) UserFavoriteSonglist() (string, []Song, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.favorites == nil {
		return "", nil, false
	}
	return c.favorites.Name, c.favorites.Songs, true
}

// SongURL resolves the streaming URL for a song.
func (c *Client) SongURL(ctx context.Context, id int64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var resp songURLResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/api/song/url?id=%d", id), &resp); err != nil {
		return "", fmt.Errorf("song url: %w", err)
	}
	if resp.URL == "" {
		return "", fmt.Errorf("song url: no stream for song %d (code %d)", id, resp.Code)
	}
	return resp.URL, nil
}

// getJSON performs an authenticated GET and decodes the JSON body.
// Callers must hold the guard.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.addCookie(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) addCookie(req *http.Request) {
	if c.cookie != "" {
		req.Header.Set("Cookie", "SESSION="+c.cookie)
	}
}
