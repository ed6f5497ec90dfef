package tui

import (
	"errors"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"quit", Command{Kind: CmdQuit}},
		{"q", Command{Kind: CmdQuit}},
		{"help", GotoScreen(ScreenHelp)},
		{"h", GotoScreen(ScreenHelp)},
		{"main", GotoScreen(ScreenMain)},
		{"login", GotoScreen(ScreenLogin)},
		{"logout", Command{Kind: CmdLogout}},
		{"play", Command{Kind: CmdPlay}},
		{"pause", Command{Kind: CmdTogglePlay}},
		{"next", Command{Kind: CmdNextTrack}},
		{"prev", Command{Kind: CmdPrevTrack}},
		{"repeat", Command{Kind: CmdToggleRepeat}},
		{"shuffle", Command{Kind: CmdToggleShuffle}},
		{"top", Command{Kind: CmdGotoTop}},
		{"bottom", Command{Kind: CmdGotoBottom}},
		{"add", Command{Kind: CmdPlaylistAdd}},
		{"select", Command{Kind: CmdSelectPlaylist}},
		// Surrounding whitespace is forgiven
		{"  quit  ", Command{Kind: CmdQuit}},
		// "new" takes an optional multi-word name
		{"new", Command{Kind: CmdNewPlaylist}},
		{"new roadtrip", Command{Kind: CmdNewPlaylist, Name: "roadtrip"}},
		{"new long drive home", Command{Kind: CmdNewPlaylist, Name: "long drive home"}},
	}

	for _, tt := range tests {
		got, err := ParseCommand(tt.input)
		if err != nil {
			t.Errorf("ParseCommand(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParseCommandRejections(t *testing.T) {
	tests := []struct {
		input  string
		reason string
	}{
		{"", "empty command"},
		{"   ", "empty command"},
		{"frobnicate", "unknown command"},
		{"quit now", "unexpected argument"},
		{"play 3", "unexpected argument"},
	}

	for _, tt := range tests {
		_, err := ParseCommand(tt.input)
		if err == nil {
			t.Errorf("ParseCommand(%q) succeeded, want rejection", tt.input)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseCommand(%q) error is %T, want *ParseError", tt.input, err)
			continue
		}
		if perr.Reason != tt.reason {
			t.Errorf("ParseCommand(%q) reason = %q, want %q", tt.input, perr.Reason, tt.reason)
		}
	}
}
