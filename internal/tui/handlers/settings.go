package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/teetime/internal/constants"
	"github.com/julianstephens/teetime/internal/logger"
	"github.com/julianstephens/teetime/internal/tui/components/settings"
	"github.com/julianstephens/teetime/internal/tui/state"
)

// HandleSettingsState handles keys on the settings summary
func HandleSettingsState(m *state.Model, msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.SettingsModel, cmd = m.SettingsModel.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(k, m.Keys.Save):
		m.Issues = nil
		return BeginSubmit(m)
	case key.Matches(k, m.Keys.Refresh):
		m.Issues = nil
		return BeginLoad(m)
	case key.Matches(k, m.Keys.Toggle):
		snap := m.Controller.Snapshot()
		keep := snap.Toggle.KeepsCurrent(snap.Draft.NotificationsEnabled)
		m.Controller.ChooseNotificationOption(!keep)
		m.Refresh()
		return nil
	case key.Matches(k, m.Keys.Left):
		m.Controller.ChooseNotificationOption(true)
		m.Refresh()
		return nil
	case key.Matches(k, m.Keys.Right):
		m.Controller.ChooseNotificationOption(false)
		m.Refresh()
		return nil
	}

	var cmd tea.Cmd
	m.SettingsModel, cmd = m.SettingsModel.Update(msg)
	return cmd
}

// HandleSettingsMessages handles messages from the settings component
func HandleSettingsMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg.(type) {
	case settings.EditSettingsMsg:
		m.Refresh()
		m.SettingsForm = SettingsFormFromSnapshot(m.Snapshot)
		m.Form = NewSettingsForm(m.SettingsForm, m.Snapshot.Toggle)
		m.State = constants.StateEditSettings
		return true, m.Form.Init()
	case settings.EditDatesMsg:
		m.Refresh()
		m.State = constants.StateEditDates
		return true, nil
	}
	return false, nil
}

// HandleEditSettingsState handles the edit settings state
func HandleEditSettingsState(m *state.Model, msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.State = constants.StateSettings
		return nil
	}

	f, cmd := m.Form.Update(msg)
	if hf, ok := f.(*huh.Form); ok {
		m.Form = hf
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		if err := ApplySettingsForm(m.Controller, m.SettingsForm); err != nil {
			logger.Warn("failed to apply settings form", "err", err)
			m.Form.State = huh.StateNormal
			return tea.Batch(cmds...)
		}
		m.Refresh()
		cmds = append(cmds, BeginSubmit(m))
	case huh.StateAborted:
		m.State = constants.StateSettings
	}
	return tea.Batch(cmds...)
}
