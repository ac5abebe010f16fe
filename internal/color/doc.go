// Package color decides whether capdemo renders styled terminal output.
//
// Styling is disabled by the --no-color flag, by globalSettings.noColor in
// the configuration file, or by the NO_COLOR environment variable
// (https://no-color.org). When disabled, lipgloss is switched to the ASCII
// profile so every style renders as plain text.
package color
