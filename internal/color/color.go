package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// For mocking in tests
var lookupEnv = os.LookupEnv

// Disabled reports whether styling is turned off by noColor or NO_COLOR.
func Disabled(noColor bool) bool {
	if noColor {
		return true
	}
	if v, ok := lookupEnv("NO_COLOR"); ok && v != "" {
		return true
	}
	return false
}

// Initialize applies the color mode to lipgloss and returns whether styling
// is disabled.
func Initialize(noColor bool) bool {
	disabled := Disabled(noColor)
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return disabled
}
