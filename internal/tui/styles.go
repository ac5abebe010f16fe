package tui

import "github.com/charmbracelet/lipgloss"

const (
	// maxLogLines bounds the log footer.
	maxLogLines   = 5
	defaultWidth  = 80
	defaultHeight = 24
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"}).
			Padding(0, 2)

	outputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#87D7FF"}).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#5F5F5F", Dark: "#A8A8A8"}).
			Italic(true)

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#767676", Dark: "#6C6C6C"})
)
