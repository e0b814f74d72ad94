package theme

import "github.com/charmbracelet/lipgloss"

// Main output styles
var (
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Listing styles
var (
	// CheckedOutMarkerStyle marks the ticket whose branch is checked out
	CheckedOutMarkerStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	ReasonStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Result styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// SectionStyle returns the header style for a listing section color
func SectionStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)
}
