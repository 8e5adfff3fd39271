package cli

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#ff9000")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	userNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	alertTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#c53030"))

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c53030"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666360", Dark: "#999591"})

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#56FF4E"))
)
