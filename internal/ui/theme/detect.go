package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Detect returns the initial preview mode based on the terminal background
// and environment variables.
func Detect() Mode {
	if env := os.Getenv("GH_HOLIDAY_MODE"); env != "" {
		switch strings.ToLower(env) {
		case "light":
			return Light
		case "dark":
			return Dark
		}
	}

	if lipgloss.HasDarkBackground() {
		return Dark
	}

	return Light
}
