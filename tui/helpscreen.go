package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/cloudtune-cli/tui/layout"
	"github.com/user/cloudtune-cli/tui/styles"
)

// helpBinding is one row of the keybinding reference.
type helpBinding struct {
	key  string
	desc string
}

// helpGroup is a titled section of bindings.
type helpGroup struct {
	title    string
	bindings []helpBinding
}

// helpGroups is the static content of the help screen. It mirrors the
// Normal-mode keymap.
var helpGroups = []helpGroup{
	{
		title: "Navigation",
		bindings: []helpBinding{
			{"k / Up", "Move selection up"},
			{"j / Down", "Move selection down"},
			{"Right / Tab", "Focus next panel"},
			{"Left / Shift+Tab", "Focus previous panel"},
			{"g / G", "Jump to top / bottom"},
		},
	},
	{
		title: "Playback",
		bindings: []helpBinding{
			{"Space", "Toggle play/pause"},
			{"Enter", "Play selected track"},
			{", / .", "Previous / next track"},
			{"r", "Toggle repeat"},
			{"s", "Toggle shuffle"},
		},
	},
	{
		title: "Playlists",
		bindings: []helpBinding{
			{"n", "New playlist"},
			{"p", "Add to playlist"},
			{"x", "Select playlist"},
		},
	},
	{
		title: "Screens & Commands",
		bindings: []helpBinding{
			{"1", "Main screen"},
			{"0 / F1", "This help screen"},
			{":", "Enter command mode"},
			{"Esc", "Cancel command mode"},
			{"q", "Quit"},
		},
	},
}

// HelpScreen is the static keybinding reference. It never needs a model
// refresh and ignores every forwarded command.
type HelpScreen struct {
	view string
}

// NewHelpScreen creates the help screen.
func NewHelpScreen() *HelpScreen {
	return &HelpScreen{}
}

// UpdateModel is a no-op: the help screen has no collaborators.
func (s *HelpScreen) UpdateModel(ctx context.Context) (bool, error) {
	return false, nil
}

// HandleCommand ignores all forwarded commands.
func (s *HelpScreen) HandleCommand(ctx context.Context, cmd Command) (bool, error) {
	return false, nil
}

// UpdateView lays out the keybinding table.
func (s *HelpScreen) UpdateView(width, height int) {
	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Ice).
		Bold(true)
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Sun).
		Width(18)
	descStyle := lipgloss.NewStyle().
		Foreground(styles.Snow)

	var lines []string
	lines = append(lines, titleStyle.Render(" cloudtune keybindings"))
	for _, group := range helpGroups {
		lines = append(lines, "")
		lines = append(lines, titleStyle.Render(" "+group.title))
		for _, b := range group.bindings {
			lines = append(lines, "   "+keyStyle.Render(b.key)+descStyle.Render(b.desc))
		}
	}

	s.view = layout.FitBlock(strings.Join(lines, "\n"), width, height)
}

// View returns the most recently computed view.
func (s *HelpScreen) View() string {
	return s.view
}
