package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/teetime/internal/constants"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var content string
	switch m.State {
	case constants.StateLoading:
		content = fmt.Sprintf("%s Loading your settings...", m.Spinner.View())
	case constants.StateSubmitting:
		content = fmt.Sprintf("%s Saving...", m.Spinner.View())
	case constants.StateSettings:
		content = m.SettingsModel.View()
	case constants.StateEditSettings:
		content = m.Form.View()
	case constants.StateEditDates:
		content = lipgloss.JoinVertical(lipgloss.Left,
			"Extra playable days (YYYY-MM-DD):",
			"",
			m.DatesModel.View(),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		docStyle.Render(content),
		m.viewStatus(),
		m.viewIssues(),
		m.Help.View(m),
	)
}

func (m Model) viewHeader() string {
	header := headerStyle.Render("Tee Time Alerts")
	if email := m.Snapshot.Identity.Email; email != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, identityStyle.Render(email))
	}
	return header
}

func (m Model) viewStatus() string {
	s := m.Snapshot.Status
	if s.IsZero() {
		return ""
	}
	return statusStyle(s.Level).Render(s.Message)
}

func (m Model) viewIssues() string {
	if len(m.Issues) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.Issues))
	for _, issue := range m.Issues {
		lines = append(lines, "• "+issue.Description)
	}
	return warningStyle.Render(strings.Join(lines, "\n"))
}
