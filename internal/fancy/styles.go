// Package fancy provides terminal styling for rendered component trees
package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Common styles that can be used across the application
var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	// Style for branch glyphs and indentation
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	// Style for component type names
	ComponentStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	// Style for the bracketed state tokens after a type name
	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	// Style for labels of hidden or disabled components
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// ComponentText styles a component type name
func ComponentText(text string) string {
	return ComponentStyle.Render(text)
}

// BranchText styles tree glyphs
func BranchText(text string) string {
	return BranchStyle.Render(text)
}

// InfoText styles state tokens
func InfoText(text string) string {
	return InfoStyle.Render(text)
}

// ErrorText styles error text (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}
