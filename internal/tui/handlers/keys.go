package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/teetime/internal/constants"
	"github.com/julianstephens/teetime/internal/tui/state"
)

// HandleGlobalKeys handles global key presses
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return true, tea.Quit
	}

	// Typing into a form or a date row owns every other key.
	switch m.State {
	case constants.StateEditSettings:
		return false, nil
	case constants.StateEditDates:
		if m.DatesModel.Editing() {
			return false, nil
		}
	}

	switch {
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	case msg.String() == "q" && m.State != constants.StateEditDates:
		m.Quitting = true
		return true, tea.Quit
	}
	return false, nil
}
