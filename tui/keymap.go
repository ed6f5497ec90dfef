package tui

import tea "github.com/charmbracelet/bubbletea"

// keyToCommand maps a Normal-mode key press to its command. The table is
// fixed and case-sensitive where letters differ (g vs G). Unmapped keys
// yield CmdNop.
func keyToCommand(msg tea.KeyMsg) Command {
	switch msg.String() {
	case "k", "up":
		// Move selection up
		return Command{Kind: CmdUp}
	case "j", "down":
		// Move selection down
		return Command{Kind: CmdDown}
	case "right", "tab":
		// Focus next panel
		return Command{Kind: CmdNextPanel}
	case "left", "shift+tab":
		// Focus previous panel
		return Command{Kind: CmdPrevPanel}
	case " ":
		// Space toggles play/pause
		return Command{Kind: CmdTogglePlay}
	case ",":
		return Command{Kind: CmdPrevTrack}
	case ".":
		return Command{Kind: CmdNextTrack}
	case "enter":
		// Play the selected track
		return Command{Kind: CmdPlay}
	case "esc":
		return Command{Kind: CmdEsc}
	case "r":
		return Command{Kind: CmdToggleRepeat}
	case "s":
		return Command{Kind: CmdToggleShuffle}
	case "g":
		return Command{Kind: CmdGotoTop}
	case "G":
		return Command{Kind: CmdGotoBottom}
	case "1":
		return GotoScreen(ScreenMain)
	case "0", "f1":
		return GotoScreen(ScreenHelp)
	case "n":
		return Command{Kind: CmdNewPlaylist}
	case "p":
		return Command{Kind: CmdPlaylistAdd}
	case "x":
		return Command{Kind: CmdSelectPlaylist}
	case "q":
		return Command{Kind: CmdQuit}
	case ":":
		// Enter command mode
		return Command{Kind: CmdEnterCommand}
	}
	return Command{Kind: CmdNop}
}
