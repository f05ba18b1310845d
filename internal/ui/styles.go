package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the preview UI chrome.
var (
	PrimaryColor   = lipgloss.Color("205")
	SecondaryColor = lipgloss.Color("240")
	AccentColor    = lipgloss.Color("86")
	MutedColor     = lipgloss.Color("245")
)

// Styles for the preview application.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	StatusStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	BorderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor)
)

// Swatch renders a block of color for one palette entry.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   ")
}

// SwatchRow renders the swatches for an ordered dot gradient.
func SwatchRow(dots []string) string {
	row := ""
	for _, dot := range dots {
		row += Swatch(dot) + " "
	}

	return row
}
