// Package components provides reusable TUI components.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/user/cloudtune-cli/tui/styles"
)

// CommandLineState holds the state for the one-row command line at the
// bottom of the frame.
type CommandLineState struct {
	// Prompt is the glyph shown before the input (":" in command mode)
	Prompt string
	// Input is the current text buffer
	Input string
	// CursorPos is the cursor position within the input
	CursorPos int
	// ShowCursor indicates whether the cursor glyph is rendered
	ShowCursor bool
}

// CommandLine renders the command line component.
func CommandLine(state CommandLineState, width int) string {
	promptStyle := lipgloss.NewStyle().
		Foreground(styles.Ice).
		Bold(true)

	inputStyle := lipgloss.NewStyle().
		Foreground(styles.Snow)

	// Build the input line, inserting the cursor when visible
	displayInput := state.Input
	if state.ShowCursor {
		cursor := "_"
		r := []rune(state.Input)
		if state.CursorPos >= len(r) {
			displayInput = state.Input + cursor
		} else {
			displayInput = string(r[:state.CursorPos]) + cursor + string(r[state.CursorPos:])
		}
	}

	content := promptStyle.Render(state.Prompt) + inputStyle.Render(displayInput)

	// Apply background to full width
	lineStyle := lipgloss.NewStyle().
		Background(styles.DarkNight).
		Width(width)

	return lineStyle.Render(content)
}

// Reset clears the prompt, the buffer and the cursor position.
func (s *CommandLineState) Reset() {
	s.Prompt = ""
	s.Input = ""
	s.CursorPos = 0
}

// SetPrompt sets the prompt glyph.
func (s *CommandLineState) SetPrompt(p string) {
	s.Prompt = p
}

// SetCursorVisibility controls whether the cursor glyph is rendered.
func (s *CommandLineState) SetCursorVisibility(visible bool) {
	s.ShowCursor = visible
}

// Contents returns the current text buffer.
func (s *CommandLineState) Contents() string {
	return s.Input
}

// ShowMessage replaces the buffer with a transient message (parse errors,
// policy rejections). The prompt is cleared so the text reads as a notice.
func (s *CommandLineState) ShowMessage(text string) {
	s.Reset()
	s.Input = text
	s.CursorPos = len([]rune(text))
}

// InsertChar inserts a character at the current cursor position.
// CursorPos indexes runes, not bytes, so multi-byte input stays intact.
func (s *CommandLineState) InsertChar(c rune) {
	r := []rune(s.Input)
	if s.CursorPos >= len(r) {
		s.Input += string(c)
	} else {
		s.Input = string(r[:s.CursorPos]) + string(c) + string(r[s.CursorPos:])
	}
	s.CursorPos++
}

// Backspace deletes the character before the cursor.
func (s *CommandLineState) Backspace() {
	r := []rune(s.Input)
	if s.CursorPos > 0 && len(r) > 0 {
		if s.CursorPos >= len(r) {
			s.Input = string(r[:len(r)-1])
		} else {
			s.Input = string(r[:s.CursorPos-1]) + string(r[s.CursorPos:])
		}
		s.CursorPos--
	}
}

// Delete deletes the character at the cursor.
func (s *CommandLineState) Delete() {
	r := []rune(s.Input)
	if s.CursorPos < len(r) {
		s.Input = string(r[:s.CursorPos]) + string(r[s.CursorPos+1:])
	}
}

// MoveCursorLeft moves the cursor left.
func (s *CommandLineState) MoveCursorLeft() {
	if s.CursorPos > 0 {
		s.CursorPos--
	}
}

// MoveCursorRight moves the cursor right.
func (s *CommandLineState) MoveCursorRight() {
	if s.CursorPos < len([]rune(s.Input)) {
		s.CursorPos++
	}
}
