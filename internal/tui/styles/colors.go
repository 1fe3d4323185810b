// Package styles provides the color palette and text styles used when
// svrmgr writes to an interactive terminal.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	White = lipgloss.Color("#E2E2E2")
	Gray  = lipgloss.Color("#888888")
	Muted = lipgloss.Color("#555555")

	Blue = lipgloss.Color("#5FAFFF")

	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
	Red    = lipgloss.Color("#FF8787")
)
