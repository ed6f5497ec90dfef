package tui

import (
	"fmt"
	"strings"
)

// ParseError reports a rejected command-line input. The UI layer formats
// it for display in the command line.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Input)
}

// ParseCommand converts command-line text into a Command. The grammar is
// a single token, optionally followed by an argument for "new". Tokens
// mirror the keymap vocabulary; unknown tokens fail with a *ParseError.
func ParseCommand(input string) (Command, error) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 {
		return Command{}, &ParseError{Input: input, Reason: "empty command"}
	}

	token := fields[0]
	args := fields[1:]

	var cmd Command
	switch token {
	case "quit", "q":
		cmd = Command{Kind: CmdQuit}
	case "help", "h":
		cmd = GotoScreen(ScreenHelp)
	case "main":
		cmd = GotoScreen(ScreenMain)
	case "login":
		cmd = GotoScreen(ScreenLogin)
	case "logout":
		cmd = Command{Kind: CmdLogout}
	case "play":
		cmd = Command{Kind: CmdPlay}
	case "pause":
		cmd = Command{Kind: CmdTogglePlay}
	case "next":
		cmd = Command{Kind: CmdNextTrack}
	case "prev":
		cmd = Command{Kind: CmdPrevTrack}
	case "repeat":
		cmd = Command{Kind: CmdToggleRepeat}
	case "shuffle":
		cmd = Command{Kind: CmdToggleShuffle}
	case "top":
		cmd = Command{Kind: CmdGotoTop}
	case "bottom":
		cmd = Command{Kind: CmdGotoBottom}
	case "new":
		// Optional playlist name, may contain spaces
		cmd = Command{Kind: CmdNewPlaylist, Name: strings.Join(args, " ")}
	case "add":
		cmd = Command{Kind: CmdPlaylistAdd}
	case "select":
		cmd = Command{Kind: CmdSelectPlaylist}
	default:
		return Command{}, &ParseError{Input: token, Reason: "unknown command"}
	}

	if token != "new" && len(args) > 0 {
		return Command{}, &ParseError{Input: input, Reason: "unexpected argument"}
	}
	return cmd, nil
}
