package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/user/cloudtune-cli/tui/styles"
)

// NowPlayingState holds the track shown in the left playback strip.
type NowPlayingState struct {
	// Title is the track name, empty when nothing is loaded
	Title string
	// Artist is the performing artist
	Artist string
}

// NowPlaying renders a bordered card with the current track, sized to
// the fixed-width left strip of the playback region.
func NowPlaying(state NowPlayingState, width int) string {
	innerW := width - 2
	if innerW < 4 {
		innerW = 4
	}

	titleStyle := lipgloss.NewStyle().Foreground(styles.Snow).Bold(true)
	artistStyle := lipgloss.NewStyle().Foreground(styles.Mist)

	var line string
	if state.Title == "" {
		line = artistStyle.Render(runewidth.Truncate("nothing playing", innerW, "…"))
	} else {
		title := runewidth.Truncate("♪ "+state.Title, innerW, "…")
		line = titleStyle.Render(title)
		rest := innerW - runewidth.StringWidth(title) - 1
		if state.Artist != "" && rest > 3 {
			line += " " + artistStyle.Render(runewidth.Truncate(state.Artist, rest, "…"))
		}
	}

	return styles.Border.Width(innerW).Render(line)
}
