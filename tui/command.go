package tui

// ScreenID identifies one of the three screens.
type ScreenID int

const (
	// ScreenMain is the playlist browser.
	ScreenMain ScreenID = iota
	// ScreenLogin is the QR login screen.
	ScreenLogin
	// ScreenHelp is the static keybinding reference.
	ScreenHelp
)

// String returns the screen name for prompts and logs.
func (s ScreenID) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenLogin:
		return "login"
	case ScreenHelp:
		return "help"
	}
	return "unknown"
}

// Mode selects how raw key input is interpreted.
type Mode int

const (
	// ModeNormal interprets keys as shortcuts via the keymap.
	ModeNormal Mode = iota
	// ModeCommandEntry collects free text into the command line.
	ModeCommandEntry
)

// CommandKind enumerates the closed command vocabulary.
type CommandKind int

const (
	// CmdNop is enqueued for unmapped keys so the dispatcher always has
	// something to process (distinguishable from "queue empty").
	CmdNop CommandKind = iota
	CmdUp
	CmdDown
	CmdNextPanel
	CmdPrevPanel
	CmdTogglePlay
	CmdPrevTrack
	CmdNextTrack
	CmdPlay
	CmdEsc
	CmdToggleRepeat
	CmdToggleShuffle
	CmdGotoTop
	CmdGotoBottom
	CmdGotoScreen
	CmdNewPlaylist
	CmdPlaylistAdd
	CmdSelectPlaylist
	CmdQuit
	CmdEnterCommand
	CmdLogout
)

// Command is an immutable semantic action. Screen carries the target for
// CmdGotoScreen; Name carries the optional argument for CmdNewPlaylist.
type Command struct {
	Kind   CommandKind
	Screen ScreenID
	Name   string
}

// GotoScreen builds a screen-switch command.
func GotoScreen(s ScreenID) Command {
	return Command{Kind: CmdGotoScreen, Screen: s}
}
