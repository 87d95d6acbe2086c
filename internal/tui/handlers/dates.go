package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/teetime/internal/constants"
	"github.com/julianstephens/teetime/internal/tui/components/extradays"
	"github.com/julianstephens/teetime/internal/tui/state"
)

// HandleEditDatesState forwards input to the extra days editor
func HandleEditDatesState(m *state.Model, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.DatesModel, cmd = m.DatesModel.Update(msg)
	return cmd
}

// HandleDatesMessages applies edits emitted by the extra days editor
func HandleDatesMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case extradays.AddMsg:
		if m.Controller.AddExtraDay() {
			m.Refresh()
			m.DatesModel.Select(len(m.Snapshot.ExtraDays) - 1)
			return true, m.DatesModel.StartEditing()
		}
		return true, nil
	case extradays.RemoveMsg:
		m.Controller.RemoveExtraDay(msg.Index)
		m.Refresh()
		return true, nil
	case extradays.UpdateMsg:
		m.Controller.UpdateExtraDay(msg.Index, msg.Value)
		m.Refresh()
		return true, nil
	case extradays.DoneMsg:
		m.State = constants.StateSettings
		return true, nil
	}
	return false, nil
}
