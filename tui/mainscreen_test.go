package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/user/cloudtune-cli/api"
	"github.com/user/cloudtune-cli/store"
)

// fakeHistory is an in-memory PlayHistory, newest entry first.
type fakeHistory struct {
	recorded []api.Song
	entries  []store.PlayEntry
}

func (f *fakeHistory) RecordPlay(song api.Song) error {
	f.recorded = append(f.recorded, song)
	f.entries = append([]store.PlayEntry{
		{SongID: song.ID, Name: song.Name, Artist: song.Artist},
	}, f.entries...)
	return nil
}

func (f *fakeHistory) RecentPlays(limit int) ([]store.PlayEntry, error) {
	if len(f.entries) > limit {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

func TestPlaySelectedRecordsHistory(t *testing.T) {
	h := &fakeHistory{}
	s := NewMainScreen(&fakeAPI{loggedIn: true}, &fakePlayer{}, h)
	s.SetPlaylist("Favorites", []api.Song{
		{ID: 1, Name: "First", Artist: "A"},
		{ID: 2, Name: "Second", Artist: "B"},
	})

	handled, err := s.HandleCommand(context.Background(), Command{Kind: CmdPlay})
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !handled {
		t.Fatal("a successful play should request a redraw")
	}
	if len(h.recorded) != 1 || h.recorded[0].ID != 1 {
		t.Fatalf("history recorded %v, want the selected track", h.recorded)
	}
}

func TestDetailPanelShowsRecentPlays(t *testing.T) {
	h := &fakeHistory{}
	s := NewMainScreen(&fakeAPI{loggedIn: true}, &fakePlayer{}, h)
	s.SetPlaylist("Favorites", []api.Song{{ID: 1, Name: "Nightshade", Artist: "A"}})

	if _, err := s.HandleCommand(context.Background(), Command{Kind: CmdPlay}); err != nil {
		t.Fatal(err)
	}

	s.UpdateView(100, 30)
	view := s.View()
	if !strings.Contains(view, "Recently played") {
		t.Fatal("detail panel should show the recently-played block after a play")
	}
	if !strings.Contains(view, "Nightshade") {
		t.Fatal("recently-played block should list the played track")
	}
}

func TestRecentPlaysLoadedAtConstruction(t *testing.T) {
	h := &fakeHistory{entries: []store.PlayEntry{
		{SongID: 5, Name: "Earlier", Artist: "C"},
	}}
	s := NewMainScreen(&fakeAPI{}, &fakePlayer{}, h)

	s.UpdateView(100, 30)
	if !strings.Contains(s.View(), "Earlier") {
		t.Fatal("history from previous runs should appear without a new play")
	}
}
