package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/user/cloudtune-cli/tui/styles"
)

// UnknownPlaybackLabel is shown before any position/duration is known.
const UnknownPlaybackLabel = "--:--/--:--"

// PlaybackBarState holds the gauge label and fill ratio.
type PlaybackBarState struct {
	// Label is the "MM:SS/MM:SS" readout
	Label string
	// Ratio is the played fraction in [0, 1]
	Ratio float64
}

// FormatPlaybackLabel formats position and duration as MM:SS/MM:SS.
func FormatPlaybackLabel(pos, dur time.Duration) string {
	return fmt.Sprintf("%02d:%02d/%02d:%02d",
		int(pos.Minutes()),
		int(pos.Seconds())%60,
		int(dur.Minutes()),
		int(dur.Seconds())%60,
	)
}

// PlaybackBar renders the bordered playback gauge, three rows tall.
// The label sits on the right edge of the bar; the fill tracks Ratio.
func PlaybackBar(state PlaybackBarState, width int) string {
	label := state.Label
	if label == "" {
		label = UnknownPlaybackLabel
	}

	// Inner width: border takes one column each side
	innerW := width - 2
	if innerW < 4 {
		innerW = 4
	}

	// Bar width: inner minus the label and one space of padding
	labelW := runewidth.StringWidth(label)
	barWidth := innerW - labelW - 1
	if barWidth < 1 {
		barWidth = 1
	}

	ratio := state.Ratio
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(float64(barWidth) * ratio)
	if filled > barWidth {
		filled = barWidth
	}

	fillStyle := lipgloss.NewStyle().Foreground(styles.Frost)
	restStyle := lipgloss.NewStyle().Foreground(styles.Slate)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Snow)

	bar := fillStyle.Render(strings.Repeat("█", filled)) +
		restStyle.Render(strings.Repeat("░", barWidth-filled))

	content := bar + " " + labelStyle.Render(label)

	return styles.Border.Width(innerW).Render(content)
}
