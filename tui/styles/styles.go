// Package styles provides Lipgloss styles for the TUI using the Nord colour palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - Nord (cool, arctic) theme
const (
	// Night is the main background colour (Nord polar night 0)
	Night = lipgloss.Color("#2E3440")
	// DarkNight is a secondary dark background (Nord polar night darker)
	DarkNight = lipgloss.Color("#272C36")
	// Slate is the border/dim accent colour (Nord polar night 3)
	Slate = lipgloss.Color("#4C566A")
	// Frost is used for highlights and focus states (Nord frost blue)
	Frost = lipgloss.Color("#81A1C1")
	// Mist is a secondary text colour (Nord snow storm dim)
	Mist = lipgloss.Color("#D8DEE9")
	// Snow is the primary text colour (Nord snow storm bright)
	Snow = lipgloss.Color("#ECEFF4")
	// Aurora is an accent colour for headers and special elements (Nord aurora purple)
	Aurora = lipgloss.Color("#B48EAD")
	// Ice is an accent colour for information and interactive elements (Nord frost cyan)
	Ice = lipgloss.Color("#88C0D0")
	// Sun is a warm accent for sub-headers (Nord aurora yellow)
	Sun = lipgloss.Color("#EBCB8B")
	// Red is used for warnings and errors (Nord aurora red)
	Red = lipgloss.Color("#BF616A")
	// Green is used for success messages (Nord aurora green)
	Green = lipgloss.Color("#A3BE8C")
)

// Pre-defined styles using the color palette

// Background is the main background style for the entire TUI
var Background = lipgloss.NewStyle().
	Background(Night)

// Panel is the style for content panels
var Panel = lipgloss.NewStyle().
	Background(DarkNight).
	Padding(1, 2)

// Border is the style for bordered panels
var Border = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Slate)

// FocusedBorder is the style for the panel that currently has focus
var FocusedBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Frost)

// Highlight is the style for selected/highlighted items
var Highlight = lipgloss.NewStyle().
	Background(Frost).
	Foreground(Night).
	Bold(true)

// PrimaryText is the style for primary text content
var PrimaryText = lipgloss.NewStyle().
	Foreground(Snow)

// SecondaryText is the style for less prominent text
var SecondaryText = lipgloss.NewStyle().
	Foreground(Mist)

// Warning is the style for warning messages
var Warning = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// Success is the style for success messages
var Success = lipgloss.NewStyle().
	Foreground(Green).
	Bold(true)
