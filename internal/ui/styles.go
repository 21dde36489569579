package ui

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

const (
	ColorPrimary   Color = "99"  // Purple - exercise names
	ColorSecondary Color = "86"  // Cyan - dates, timers
	ColorSuccess   Color = "2"   // Green - gains
	ColorError     Color = "196" // Bright red - losses, errors
	ColorMuted     Color = "241" // Gray - notes, secondary text
	ColorNormal    Color = "250" // Default text
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	DateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NoteStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	GainStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	LossStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	TimerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			Padding(1, 2)

	BlockStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)
