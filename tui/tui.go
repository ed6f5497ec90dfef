// Package tui implements the controller of the cloudtune terminal
// application: it translates key presses into queued commands, routes
// them to the active screen or to application-wide handlers, drives the
// per-tick model update, and re-renders the frame only when something
// changed.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/cloudtune-cli/api"
	"github.com/user/cloudtune-cli/tui/components"
	"github.com/user/cloudtune-cli/tui/layout"
)

const (
	// defaultTickInterval is the cadence of the dispatch/update cycle.
	defaultTickInterval = 100 * time.Millisecond
	// playbackHeight is the fixed height of the playback region.
	playbackHeight = 3
	// leftStripWidth is the fixed width of the now-playing strip inside
	// the playback region.
	leftStripWidth = 26
)

// tickMsg drives one dispatch/update iteration.
type tickMsg time.Time

// loginRejectedPrompt is shown when navigating to Login while a session
// is active.
const loginRejectedPrompt = "you have to log out from the current account first!"

// Options wires the controller to its collaborators.
type Options struct {
	API     MusicAPI
	Player  AudioPlayer
	History PlayHistory
	// TickInterval overrides the dispatch cadence; zero means default.
	TickInterval time.Duration
}

// Model is the Bubbletea model holding the controller state. It owns the
// screen and mode state machines, the command queue and the dirty flag;
// the screens and collaborators are passive.
type Model struct {
	api          MusicAPI
	player       AudioPlayer
	history      PlayHistory
	tickInterval time.Duration

	// state machines
	currentScreen ScreenID
	currentMode   Mode
	// dirty gates re-rendering of the screen region; recomputed every tick
	dirty bool
	// queue is the FIFO of pending commands; one is dequeued per tick
	queue []Command

	// screens; Main and Login are reconstructed wholesale on (re)login
	mainScreen  Screen
	loginScreen Screen
	helpScreen  Screen

	// screen factories, substituted in tests
	newMain  func(name string, songs []api.Song) Screen
	newLogin func() Screen

	// always-redrawn widgets
	cmdLine    components.CommandLineState
	playback   components.PlaybackBarState
	nowPlaying components.NowPlayingState

	width    int
	height   int
	quitting bool
	err      error
}

// NewModel creates the controller. The first render is forced by
// starting dirty.
func NewModel(opts Options) *Model {
	m := &Model{
		api:           opts.API,
		player:        opts.Player,
		history:       opts.History,
		tickInterval:  opts.TickInterval,
		currentScreen: ScreenMain,
		currentMode:   ModeNormal,
		dirty:         true,
	}
	if m.tickInterval <= 0 {
		m.tickInterval = defaultTickInterval
	}

	m.newMain = func(name string, songs []api.Song) Screen {
		ms := NewMainScreen(m.api, m.player, m.history)
		if name != "" || len(songs) > 0 {
			ms.SetPlaylist(name, songs)
		}
		return ms
	}
	m.newLogin = func() Screen {
		return NewLoginScreen(m.api)
	}

	name, songs, _ := m.api.UserFavoriteSonglist()
	m.mainScreen = m.newMain(name, songs)
	m.loginScreen = m.newLogin()
	m.helpScreen = NewHelpScreen()

	m.playback.Label = components.UnknownPlaybackLabel
	return m
}

// Err returns the collaborator failure that aborted the run, if any.
func (m *Model) Err() error {
	return m.err
}

// Init starts the tick cycle.
func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

// tickCmd returns a command that sends a tickMsg after the tick interval.
func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dirty = true
		return m, nil

	case tea.KeyMsg:
		// Input translation only; execution happens on the next tick
		m.handleKey(msg)
		return m, nil

	case tickMsg:
		return m.step()
	}

	return m, nil
}

// step runs one controller iteration: refresh the model, then dequeue
// and execute at most one command. Collaborator failures abort the run.
func (m *Model) step() (tea.Model, tea.Cmd) {
	ctx := context.Background()

	if err := m.updateModel(ctx); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if cmd, ok := m.popCommand(); ok {
		quit, err := m.dispatch(ctx, cmd)
		if err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		if quit {
			// No further processing this iteration; queued commands
			// behind the quit are discarded with the model
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, m.tickCmd()
}

// handleKey translates one key press according to the current mode.
// Normal mode enqueues a command; CommandEntry mode mutates the command
// line buffer.
func (m *Model) handleKey(msg tea.KeyMsg) {
	if m.currentMode == ModeNormal {
		m.queue = append(m.queue, keyToCommand(msg))
		return
	}

	// CommandEntry mode
	switch msg.String() {
	case "enter":
		// Commit the buffer to the parser
		m.parseCommandLine()
		m.currentMode = ModeNormal

	case "esc":
		// Discard the buffer
		m.cmdLine.Reset()
		m.currentMode = ModeNormal

	case "backspace":
		m.cmdLine.Backspace()

	case "delete":
		m.cmdLine.Delete()

	case "left":
		m.cmdLine.MoveCursorLeft()

	case "right":
		m.cmdLine.MoveCursorRight()

	default:
		// Insert printable runes into the buffer
		switch msg.Type {
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.cmdLine.InsertChar(r)
			}
		case tea.KeySpace:
			m.cmdLine.InsertChar(' ')
		}
	}
}

// parseCommandLine parses the committed buffer into a command. The
// buffer is always cleared first; on error it is repopulated with the
// error text so the failure is visible in place.
func (m *Model) parseCommandLine() {
	input := m.cmdLine.Contents()
	m.cmdLine.Reset()

	cmd, err := ParseCommand(input)
	if err != nil {
		m.cmdLine.ShowMessage(err.Error())
		return
	}
	m.queue = append(m.queue, cmd)
}

// popCommand dequeues the oldest pending command.
func (m *Model) popCommand() (Command, bool) {
	if len(m.queue) == 0 {
		return Command{}, false
	}
	cmd := m.queue[0]
	m.queue = m.queue[1:]
	return cmd, true
}

// dispatch executes one command. Controller-level commands mutate the
// state machines here; the movement/playback subset is forwarded to the
// active screen, whose redraw verdict is OR-ed into the dirty flag so a
// forwarded command never clears a dirty flag set by the model update.
func (m *Model) dispatch(ctx context.Context, cmd Command) (bool, error) {
	switch cmd.Kind {
	case CmdQuit:
		return true, nil

	case CmdGotoScreen:
		m.switchScreen(cmd.Screen)

	case CmdEnterCommand:
		m.currentMode = ModeCommandEntry
		m.cmdLine.Reset()
		m.cmdLine.SetPrompt(":")

	case CmdLogout:
		// Fresh login screen for the next session
		m.loginScreen = m.newLogin()
		if err := m.api.Logout(ctx); err != nil {
			return false, err
		}

	case CmdDown, CmdUp, CmdNextPanel, CmdPrevPanel, CmdEsc, CmdPlay:
		handled, err := m.activeScreen().HandleCommand(ctx, cmd)
		if err != nil {
			return false, err
		}
		m.dirty = m.dirty || handled
	}

	// Everything else (including Nop) is deliberately inert
	return false, nil
}

// switchScreen transitions the screen state machine. Navigating to the
// login screen while a session is active is a policy rejection, not an
// error: the transition is skipped and a prompt is shown instead.
func (m *Model) switchScreen(to ScreenID) {
	if to == ScreenLogin && m.api.IsLogin() {
		m.cmdLine.ShowMessage(loginRejectedPrompt)
		return
	}
	m.dirty = true
	m.currentScreen = to
}

// updateModel refreshes the active screen's model and recomputes the
// dirty flag. The playback readout is refreshed every tick regardless of
// screen; it never sets the dirty flag because the gauge is always
// redrawn.
func (m *Model) updateModel(ctx context.Context) error {
	switch m.currentScreen {
	case ScreenHelp:
		// Static screen, never needs a refresh
		m.dirty = false

	case ScreenLogin:
		redraw, err := m.loginScreen.UpdateModel(ctx)
		if err != nil {
			return err
		}
		if m.api.IsLogin() {
			// One-time post-login initialization
			if err := m.initAfterLogin(ctx); err != nil {
				return err
			}
			redraw = true
		}
		m.dirty = redraw

	case ScreenMain:
		redraw, err := m.mainScreen.UpdateModel(ctx)
		if err != nil {
			return err
		}
		m.dirty = redraw
	}

	m.updatePlayback()
	return nil
}

// initAfterLogin rebuilds the main screen from the favorite playlist
// and switches to it. A login confirmed inside the TUI leaves the
// favorites cache cold, so fetch before reading it.
func (m *Model) initAfterLogin(ctx context.Context) error {
	name, songs, ok := m.api.UserFavoriteSonglist()
	if !ok {
		if err := m.api.RefreshFavorites(ctx); err != nil {
			return err
		}
		name, songs, _ = m.api.UserFavoriteSonglist()
	}
	m.mainScreen = m.newMain(name, songs)
	m.switchScreen(ScreenMain)
	return nil
}

// updatePlayback recomputes the gauge label and the now-playing card
// from the shared player. The label is left untouched when position or
// duration is unavailable (nothing playing).
func (m *Model) updatePlayback() {
	pos, okPos := m.player.Position()
	dur, okDur := m.player.Duration()
	if okPos && okDur {
		m.playback.Label = components.FormatPlaybackLabel(pos, dur)
		if dur > 0 {
			m.playback.Ratio = float64(pos) / float64(dur)
		}
	}

	if cur, ok := m.player.Current(); ok {
		m.nowPlaying.Title = cur.Name
		m.nowPlaying.Artist = cur.Artist
	} else {
		m.nowPlaying = components.NowPlayingState{}
	}
}

// activeScreen returns the screen selected by the state machine.
func (m *Model) activeScreen() Screen {
	switch m.currentScreen {
	case ScreenLogin:
		return m.loginScreen
	case ScreenHelp:
		return m.helpScreen
	}
	return m.mainScreen
}

// View renders the frame: the screen region on top (recomputed only
// when dirty), the fixed playback region, and the one-row command line.
// The playback gauge and the command line are redrawn unconditionally.
func (m *Model) View() string {
	if m.quitting || m.width == 0 || m.height == 0 {
		return ""
	}

	screenH := m.height - playbackHeight - 1
	if screenH < 1 {
		screenH = 1
	}

	// Cheap path: skip screen layout entirely when nothing changed
	if m.dirty {
		m.activeScreen().UpdateView(m.width, screenH)
	}
	screen := layout.FitBlock(m.activeScreen().View(), m.width, screenH)

	gaugeW := m.width - leftStripWidth
	if gaugeW < 4 {
		gaugeW = 4
	}
	playbackRow := lipgloss.JoinHorizontal(lipgloss.Top,
		components.NowPlaying(m.nowPlaying, leftStripWidth),
		components.PlaybackBar(m.playback, gaugeW),
	)

	m.cmdLine.SetCursorVisibility(m.currentMode == ModeCommandEntry)
	cmdLine := components.CommandLine(m.cmdLine, m.width)

	return lipgloss.JoinVertical(lipgloss.Left, screen, playbackRow, cmdLine)
}
