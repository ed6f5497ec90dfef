package tui

import (
	"context"
	"time"

	"github.com/user/cloudtune-cli/api"
	"github.com/user/cloudtune-cli/store"
)

// Screen is the capability interface every screen implements. The
// controller never looks inside a screen; it only sequences these calls.
type Screen interface {
	// UpdateModel refreshes the screen's model from its collaborators.
	// The returned bool reports whether the view needs a redraw.
	UpdateModel(ctx context.Context) (bool, error)
	// HandleCommand processes a command forwarded by the dispatcher.
	// The returned bool reports whether the view needs a redraw.
	HandleCommand(ctx context.Context, cmd Command) (bool, error)
	// UpdateView recomputes the rendered view for the given region size.
	// Only called when a redraw is due.
	UpdateView(width, height int)
	// View returns the most recently computed view.
	View() string
}

// MusicAPI is the slice of the API client the TUI consumes (spec'd
// narrow so tests can substitute a fake).
type MusicAPI interface {
	IsLogin() bool
	Logout(ctx context.Context) error
	RefreshFavorites(ctx context.Context) error
	UserFavoriteSonglist() (string, []api.Song, bool)
	QRKey(ctx context.Context) (string, error)
	QRCheck(ctx context.Context, key string) (api.QRState, error)
	SongURL(ctx context.Context, id int64) (string, error)
}

// AudioPlayer is the slice of the player the TUI consumes.
type AudioPlayer interface {
	Position() (time.Duration, bool)
	Duration() (time.Duration, bool)
	Current() (api.Song, bool)
	SetQueue(songs []api.Song)
	Load(index int, url string) error
}

// PlayHistory records played tracks and serves them back for the
// recently-played readout.
type PlayHistory interface {
	RecordPlay(song api.Song) error
	RecentPlays(limit int) ([]store.PlayEntry, error)
}
