package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/cloudtune-cli/api"
	"github.com/user/cloudtune-cli/store"
	"github.com/user/cloudtune-cli/tui/layout"
	"github.com/user/cloudtune-cli/tui/styles"
)

// recentPlaysShown caps the recently-played block in the detail panel.
const recentPlaysShown = 5

// panelID identifies which main-screen panel has focus.
type panelID int

const (
	// panelTracks focuses the favorite-playlist track list.
	panelTracks panelID = iota
	// panelDetail focuses the track detail panel.
	panelDetail
)

// MainScreen is the playlist browser: the favorite track list on the
// left and a detail panel on the right.
type MainScreen struct {
	api     MusicAPI
	player  AudioPlayer
	history PlayHistory

	playlistName string
	songs        []api.Song
	selected     int
	scroll       int
	focus        panelID

	// playingID is the last observed current track, used to detect
	// track changes between ticks
	playingID int64
	recent    []store.PlayEntry

	view string
}

// NewMainScreen creates a main screen over the given collaborators. It
// is rebuilt wholesale after a successful login.
func NewMainScreen(musicAPI MusicAPI, player AudioPlayer, history PlayHistory) *MainScreen {
	s := &MainScreen{
		api:     musicAPI,
		player:  player,
		history: history,
	}
	s.refreshRecent()
	return s
}

// SetPlaylist installs the favorite playlist and mirrors it into the
// player's queue.
func (s *MainScreen) SetPlaylist(name string, songs []api.Song) {
	s.playlistName = name
	s.songs = songs
	s.selected = 0
	s.scroll = 0
	s.player.SetQueue(songs)
}

// UpdateModel watches the player for track changes.
func (s *MainScreen) UpdateModel(ctx context.Context) (bool, error) {
	var id int64
	if cur, ok := s.player.Current(); ok {
		id = cur.ID
	}
	if id != s.playingID {
		s.playingID = id
		return true, nil
	}
	return false, nil
}

// HandleCommand processes the commands the dispatcher forwards.
func (s *MainScreen) HandleCommand(ctx context.Context, cmd Command) (bool, error) {
	switch cmd.Kind {
	case CmdUp:
		if s.focus == panelTracks && s.selected > 0 {
			s.selected--
			return true, nil
		}
		return false, nil

	case CmdDown:
		if s.focus == panelTracks && s.selected < len(s.songs)-1 {
			s.selected++
			return true, nil
		}
		return false, nil

	case CmdNextPanel, CmdPrevPanel:
		// Two panels: next and previous both toggle
		if s.focus == panelTracks {
			s.focus = panelDetail
		} else {
			s.focus = panelTracks
		}
		return true, nil

	case CmdPlay:
		return s.playSelected(ctx)

	case CmdEsc:
		// Nothing to cancel on this screen
		return false, nil
	}
	return false, nil
}

// playSelected resolves the stream URL for the selected track, loads it
// into the player and records it in the play history.
func (s *MainScreen) playSelected(ctx context.Context) (bool, error) {
	if len(s.songs) == 0 {
		return false, nil
	}
	song := s.songs[s.selected]

	url, err := s.api.SongURL(ctx, song.ID)
	if err != nil {
		return false, err
	}
	if err := s.player.Load(s.selected, url); err != nil {
		return false, err
	}
	if s.history != nil {
		if err := s.history.RecordPlay(song); err != nil {
			return false, err
		}
		s.refreshRecent()
	}
	return true, nil
}

// refreshRecent reloads the recently-played block. A history read
// failure just leaves the previous block in place.
func (s *MainScreen) refreshRecent() {
	if s.history == nil {
		return
	}
	if entries, err := s.history.RecentPlays(recentPlaysShown); err == nil {
		s.recent = entries
	}
}

// UpdateView lays out the two panels side by side.
func (s *MainScreen) UpdateView(width, height int) {
	leftW := width * 2 / 3
	rightW := width - leftW

	left := s.renderTracks(leftW, height)
	right := s.renderDetail(rightW, height)

	s.view = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// View returns the most recently computed view.
func (s *MainScreen) View() string {
	return s.view
}

// renderTracks renders the scrollable track list panel.
func (s *MainScreen) renderTracks(width, height int) string {
	rows := height - 2 // border takes a row top and bottom
	if rows < 1 {
		rows = 1
	}
	innerW := width - 2
	if innerW < 10 {
		innerW = 10
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(styles.Mist).
		Bold(true).
		Underline(true)
	rowStyle := lipgloss.NewStyle().Foreground(styles.Snow)
	dimStyle := lipgloss.NewStyle().Foreground(styles.Slate).Italic(true)

	title := s.playlistName
	if title == "" {
		title = "Favorites"
	}

	var lines []string
	lines = append(lines, headerStyle.Render(layout.PadToWidth(" "+title, innerW)))

	if len(s.songs) == 0 {
		if s.api.IsLogin() {
			lines = append(lines, dimStyle.Render(" playlist is empty"))
		} else {
			lines = append(lines, dimStyle.Render(" not logged in - type :login"))
		}
	} else {
		// Keep the selection inside the visible window
		listRows := rows - 1
		if listRows < 1 {
			listRows = 1
		}
		if s.selected < s.scroll {
			s.scroll = s.selected
		} else if s.selected >= s.scroll+listRows {
			s.scroll = s.selected - listRows + 1
		}

		end := s.scroll + listRows
		if end > len(s.songs) {
			end = len(s.songs)
		}
		for i := s.scroll; i < end; i++ {
			song := s.songs[i]
			marker := "  "
			if song.ID == s.playingID && s.playingID != 0 {
				marker = "♪ "
			}
			line := fmt.Sprintf(" %s%-3d %s - %s", marker, i+1, song.Name, song.Artist)
			line = layout.PadToWidth(line, innerW)
			if i == s.selected {
				lines = append(lines, styles.Highlight.Render(line))
			} else {
				lines = append(lines, rowStyle.Render(line))
			}
		}
	}

	lines = layout.NormalizeLines(lines, rows)
	border := styles.Border
	if s.focus == panelTracks {
		border = styles.FocusedBorder
	}
	return border.Width(innerW).Render(strings.Join(lines, "\n"))
}

// renderDetail renders the selected-track detail panel.
func (s *MainScreen) renderDetail(width, height int) string {
	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	innerW := width - 2
	if innerW < 10 {
		innerW = 10
	}

	labelStyle := lipgloss.NewStyle().Foreground(styles.Mist)
	valueStyle := lipgloss.NewStyle().Foreground(styles.Snow)
	dimStyle := lipgloss.NewStyle().Foreground(styles.Slate).Italic(true)

	var lines []string
	if len(s.songs) == 0 {
		lines = append(lines, dimStyle.Render(" no track selected"))
	} else {
		song := s.songs[s.selected]
		lines = append(lines,
			labelStyle.Render(" Track  ")+valueStyle.Render(song.Name),
			labelStyle.Render(" Artist ")+valueStyle.Render(song.Artist),
			labelStyle.Render(" Album  ")+valueStyle.Render(song.Album),
			labelStyle.Render(" Length ")+valueStyle.Render(fmt.Sprintf("%02d:%02d",
				int(song.Duration.Minutes()), int(song.Duration.Seconds())%60)),
		)
		if song.ID == s.playingID && s.playingID != 0 {
			lines = append(lines, "", styles.Success.Render(" ♪ now playing"))
		}
	}

	if len(s.recent) > 0 {
		lines = append(lines, "", labelStyle.Render(" Recently played"))
		for _, e := range s.recent {
			lines = append(lines, dimStyle.Render(fmt.Sprintf("  %s - %s", e.Name, e.Artist)))
		}
	}

	lines = layout.NormalizeLines(lines, rows)
	for i := range lines {
		lines[i] = layout.PadToWidth(lines[i], innerW)
	}
	border := styles.Border
	if s.focus == panelDetail {
		border = styles.FocusedBorder
	}
	return border.Width(innerW).Render(strings.Join(lines, "\n"))
}
