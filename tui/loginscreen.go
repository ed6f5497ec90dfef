package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/cloudtune-cli/api"
	"github.com/user/cloudtune-cli/tui/layout"
	"github.com/user/cloudtune-cli/tui/styles"
)

// LoginScreen drives the QR login flow: request a key once, then poll
// the scan state every tick until the service confirms the login. The
// controller detects the confirmed session and takes over from there.
type LoginScreen struct {
	api MusicAPI

	key      string
	state    api.QRState
	spin     spinner.Model
	loginURL string

	view string
}

// NewLoginScreen creates a fresh login screen. The controller rebuilds
// it wholesale on logout.
func NewLoginScreen(musicAPI MusicAPI) *LoginScreen {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.Ice)),
	)
	return &LoginScreen{
		api:   musicAPI,
		state: api.QRWaiting,
		spin:  sp,
	}
}

// UpdateModel requests a QR key on the first tick, then polls the scan
// state. It always reports a redraw while polling so the spinner animates.
func (s *LoginScreen) UpdateModel(ctx context.Context) (bool, error) {
	// Advance the spinner one frame per tick
	s.spin, _ = s.spin.Update(spinner.TickMsg{Time: time.Now(), ID: s.spin.ID()})

	if s.key == "" {
		key, err := s.api.QRKey(ctx)
		if err != nil {
			return false, err
		}
		s.key = key
		s.loginURL = "https://music.example.com/login?codekey=" + key
		return true, nil
	}

	state, err := s.api.QRCheck(ctx, s.key)
	if err != nil {
		return false, err
	}
	if state == api.QRExpired {
		// Key timed out: request a new one next tick
		s.key = ""
	}
	s.state = state
	return true, nil
}

// HandleCommand ignores forwarded commands; the QR flow needs no input.
func (s *LoginScreen) HandleCommand(ctx context.Context, cmd Command) (bool, error) {
	return false, nil
}

// UpdateView lays out the QR login instructions and poll state.
func (s *LoginScreen) UpdateView(width, height int) {
	titleStyle := lipgloss.NewStyle().Foreground(styles.Ice).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(styles.Snow)
	dimStyle := lipgloss.NewStyle().Foreground(styles.Mist)
	urlStyle := lipgloss.NewStyle().Foreground(styles.Sun).Underline(true)

	var status string
	switch s.state {
	case api.QRScanned:
		status = textStyle.Render("Scanned - confirm on your phone")
	case api.QRConfirmed:
		status = styles.Success.Render("Login confirmed")
	default:
		status = dimStyle.Render("Waiting for scan")
	}

	lines := []string{
		"",
		titleStyle.Render(" Log in to cloudtune"),
		"",
		textStyle.Render(" Scan this link with the mobile app:"),
		"",
		" " + urlStyle.Render(s.loginURL),
		"",
		" " + s.spin.View() + " " + status,
		"",
		dimStyle.Render(" :main returns to the browser, q quits"),
	}

	s.view = layout.FitBlock(strings.Join(lines, "\n"), width, height)
}

// View returns the most recently computed view.
func (s *LoginScreen) View() string {
	return s.view
}
