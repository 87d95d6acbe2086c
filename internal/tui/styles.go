package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/teetime/internal/constants"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("28")).
			Padding(0, 1).
			Bold(true)

	identityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("111"))

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

func statusStyle(level constants.StatusLevel) lipgloss.Style {
	switch level {
	case constants.StatusSuccess:
		return successStyle
	case constants.StatusWarning:
		return warningStyle
	case constants.StatusError:
		return dangerStyle
	default:
		return infoStyle
	}
}
