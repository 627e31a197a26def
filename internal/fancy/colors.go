package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors used for component tree output
var (
	ColorBlue     = lipgloss.Color("39")  // Blue
	ColorCyan     = lipgloss.Color("45")  // Cyan
	ColorRed      = lipgloss.Color("196") // Red
	ColorGray     = lipgloss.Color("250") // Light gray
	ColorDarkGray = lipgloss.Color("240") // Dark gray for branches
)
