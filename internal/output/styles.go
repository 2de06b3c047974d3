package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. All ANSI 256 colors used in the CLI are named here.
var (
	// ColorCyan is used for identifiable nouns: codestart names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for category-defining codestarts.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for example codestarts.
	ColorYellow = lipgloss.Color("220")

	// ColorMagenta is used for tooling codestarts.
	ColorMagenta = lipgloss.Color("213")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (codestart names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles headings and the tree root.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// CategoryStyle returns the style for a codestart category name.
// Unknown categories return an unstyled default.
func CategoryStyle(category string) lipgloss.Style {
	switch category {
	case "project", "language", "buildtool", "config":
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case "example":
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case "tooling":
		return lipgloss.NewStyle().Foreground(ColorMagenta)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
