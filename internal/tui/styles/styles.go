package styles

import (
	"nathanbeddoewebdev/svrmgr/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Title is the header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Label is used for field names in detail views.
	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	// MutedText is for hints and timestamps.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// AccentText marks the selected server.
	AccentText = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)
)

// StatusStyle returns the style for a server status value.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case domain.StatusOnline:
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	case domain.StatusOffline:
		return lipgloss.NewStyle().Foreground(Red)
	default:
		return lipgloss.NewStyle().Foreground(Gray)
	}
}

// StatusIndicator returns a colored dot followed by the status text.
func StatusIndicator(status string) string {
	style := StatusStyle(status)
	return style.Render("●") + " " + style.Render(status)
}

// LevelStyle returns the style for a console log level.
func LevelStyle(level string) lipgloss.Style {
	switch level {
	case domain.LevelError:
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	case domain.LevelWarning:
		return lipgloss.NewStyle().Foreground(Yellow)
	default:
		return lipgloss.NewStyle().Foreground(White)
	}
}

// SourceStyle distinguishes operator input from server output.
func SourceStyle(source string) lipgloss.Style {
	if source == domain.SourceUser {
		return lipgloss.NewStyle().Foreground(Blue)
	}
	return lipgloss.NewStyle().Foreground(Gray)
}
