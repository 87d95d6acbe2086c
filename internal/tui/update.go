package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/teetime/internal/constants"
	"github.com/julianstephens/teetime/internal/tui/handlers"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.SettingsModel.SetSize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		if m.State != constants.StateLoading && m.State != constants.StateSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if handled, cmd := handlers.HandleGlobalKeys(&m.Model, msg); handled {
			if m.Quitting {
				m.Close()
			}
			return m, cmd
		}
	}

	if handled, cmd := handlers.HandleResultMessages(&m.Model, msg); handled {
		return m, cmd
	}
	if handled, cmd := handlers.HandleSettingsMessages(&m.Model, msg); handled {
		return m, cmd
	}
	if handled, cmd := handlers.HandleDatesMessages(&m.Model, msg); handled {
		return m, cmd
	}

	switch m.State {
	case constants.StateSettings:
		return m, handlers.HandleSettingsState(&m.Model, msg)
	case constants.StateEditSettings:
		return m, handlers.HandleEditSettingsState(&m.Model, msg)
	case constants.StateEditDates:
		return m, handlers.HandleEditDatesState(&m.Model, msg)
	}
	// Loading and submitting ignore input.
	return m, nil
}
