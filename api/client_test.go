package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// memorySession is an in-memory SessionStore for client tests.
type memorySession struct {
	cookie   string
	nickname string
	cleared  bool
}

func (m *memorySession) SaveSession(cookie, nickname string) error {
	m.cookie = cookie
	m.nickname = nickname
	return nil
}

func (m *memorySession) LoadSession() (string, string, error) {
	return m.cookie, m.nickname, nil
}

func (m *memorySession) ClearSession() error {
	m.cookie = ""
	m.nickname = ""
	m.cleared = true
	return nil
}

func TestQRLoginFlow(t *testing.T) {
	checks := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login/qr/key":
			fmt.Fprint(w, `{"code":200,"unikey":"key-1"}`)
		case "/api/login/qr/check":
			if r.URL.Query().Get("key") != "key-1" {
				t.Errorf("check used key %q", r.URL.Query().Get("key"))
			}
			checks++
			switch checks {
			case 1:
				fmt.Fprint(w, `{"code":801}`)
			case 2:
				fmt.Fprint(w, `{"code":802}`)
			default:
				fmt.Fprint(w, `{"code":803,"cookie":"sess-xyz","nickname":"listener"}`)
			}
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	session := &memorySession{}
	c := New(srv.URL, session)
	ctx := context.Background()

	key, err := c.QRKey(ctx)
	if err != nil {
		t.Fatalf("qr key: %v", err)
	}
	if key != "key-1" {
		t.Fatalf("key = %q", key)
	}

	states := []QRState{QRWaiting, QRScanned, QRConfirmed}
	for i, want := range states {
		got, err := c.QRCheck(ctx, key)
		if err != nil {
			t.Fatalf("check %d: %v", i+1, err)
		}
		if got != want {
			t.Fatalf("check %d = %v, want %v", i+1, got, want)
		}
	}

	if !c.IsLogin() {
		t.Fatal("client should be logged in after confirmation")
	}
	if c.Nickname() != "listener" {
		t.Fatalf("nickname = %q", c.Nickname())
	}
	if session.cookie != "sess-xyz" {
		t.Fatalf("session not persisted, cookie = %q", session.cookie)
	}
}

func TestQRCheckExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":800}`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	state, err := c.QRCheck(context.Background(), "stale")
	if err != nil {
		t.Fatal(err)
	}
	if state != QRExpired {
		t.Fatalf("state = %v, want QRExpired", state)
	}
	if c.IsLogin() {
		t.Fatal("expired key must not log in")
	}
}

func TestPersistedSessionIsLoadedOnNew(t *testing.T) {
	session := &memorySession{cookie: "saved", nickname: "listener"}
	c := New("http://unused.invalid", session)

	if !c.IsLogin() {
		t.Fatal("a persisted cookie should mark the client logged in")
	}
	if c.Nickname() != "listener" {
		t.Fatalf("nickname = %q", c.Nickname())
	}
}

func TestRequestsCarrySessionCookie(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		fmt.Fprint(w, `{"code":200,"nickname":"listener"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	c.SetCookie("sess-xyz", "")
	if _, err := c.LoginStatus(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotCookie != "SESSION=sess-xyz" {
		t.Fatalf("cookie header = %q", gotCookie)
	}
}

func TestLoginStatusWithoutCookieSkipsNetwork(t *testing.T) {
	c := New("http://unused.invalid", nil)
	ok, err := c.LoginStatus(context.Background())
	if err != nil {
		t.Fatalf("cookie-less status check should not error: %v", err)
	}
	if ok {
		t.Fatal("no cookie means not logged in")
	}
}

func TestFavoritesCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":200,"id":9,"name":"My Favorites","songs":[
			{"id":1,"name":"One","artist":"A","album":"X","duration_ms":185000},
			{"id":2,"name":"Two","artist":"B","album":"Y","duration_ms":240000}
		]}`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)

	if _, _, ok := c.UserFavoriteSonglist(); ok {
		t.Fatal("cache should be empty before the first fetch")
	}

	if err := c.RefreshFavorites(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	name, songs, ok := c.UserFavoriteSonglist()
	if !ok {
		t.Fatal("cache should be populated after refresh")
	}
	if name != "My Favorites" || len(songs) != 2 {
		t.Fatalf("got (%q, %d songs)", name, len(songs))
	}
	if songs[0].Duration != 185*time.Second {
		t.Fatalf("duration = %v, want 3m5s", songs[0].Duration)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":200,"id":9,"name":"My Favorites","songs":[]}`)
	}))
	defer srv.Close()

	session := &memorySession{cookie: "sess", nickname: "listener"}
	c := New(srv.URL, session)
	if err := c.RefreshFavorites(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if c.IsLogin() {
		t.Fatal("still logged in after logout")
	}
	if _, _, ok := c.UserFavoriteSonglist(); ok {
		t.Fatal("favorites cache survived logout")
	}
	if !session.cleared {
		t.Fatal("persisted session not cleared")
	}
}

func TestSongURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "42" {
			t.Errorf("requested id %q", r.URL.Query().Get("id"))
		}
		fmt.Fprint(w, `{"code":200,"url":"https://stream.example.com/42.mp3"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	url, err := c.SongURL(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://stream.example.com/42.mp3" {
		t.Fatalf("url = %q", url)
	}
}

func TestSongURLUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":404,"url":""}`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	if _, err := c.SongURL(context.Background(), 42); err == nil {
		t.Fatal("expected an error for a song without a stream")
	}
}
