// Package cli provides the styled terminal surface shared by the plain and
// interactive front ends: colour palette, version banner and the custom
// kong help printer.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// AppName is the user-facing tool name.
const AppName = "Audio Enhancer"

// Colour palette
var (
	primaryColor = lipgloss.Color("#5F5FD7") // indigo
	accentColor  = lipgloss.Color("#00AF87") // green
	mutedColor   = lipgloss.Color("#888888")
	textColor    = lipgloss.Color("#FFFFFF")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#D70000"))

	WarnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFA500"))

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(accentColor)
)

// PrintVersion prints the version banner.
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render(AppName + " 🎵"))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message to stderr.
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintWarning prints a non-fatal warning to stderr.
func PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", WarnStyle.Render("Warning:"), message)
}
