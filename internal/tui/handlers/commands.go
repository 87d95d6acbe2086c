package handlers

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/teetime/internal/constants"
	"github.com/julianstephens/teetime/internal/form"
	"github.com/julianstephens/teetime/internal/tui/state"
)

type LoadedMsg struct {
	Result form.LoadResult
}

type SubmittedMsg struct {
	Result form.SubmitResult
}

// StatusTickMsg redraws so expired status banners disappear.
type StatusTickMsg time.Time

// LoadCmd fetches the configuration off the UI loop.
func LoadCmd(m *state.Model) tea.Cmd {
	c, ctx := m.Controller, m.Ctx
	return func() tea.Msg {
		return LoadedMsg{Result: c.Load(ctx)}
	}
}

// SubmitCmd saves the configuration off the UI loop.
func SubmitCmd(m *state.Model) tea.Cmd {
	c, ctx := m.Controller, m.Ctx
	return func() tea.Msg {
		return SubmittedMsg{Result: c.Submit(ctx)}
	}
}

func StatusTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return StatusTickMsg(t)
	})
}

// BeginLoad switches to the loading state and starts a fetch.
func BeginLoad(m *state.Model) tea.Cmd {
	m.State = constants.StateLoading
	return tea.Batch(LoadCmd(m), m.Spinner.Tick)
}

// BeginSubmit switches to the submitting state and starts a save.
func BeginSubmit(m *state.Model) tea.Cmd {
	m.PreviousState = m.State
	m.State = constants.StateSubmitting
	return tea.Batch(SubmitCmd(m), m.Spinner.Tick)
}

// HandleResultMessages applies load and submit results.
func HandleResultMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Result.Stale {
			return true, nil
		}
		m.Refresh()
		m.State = constants.StateSettings
		return true, nil
	case SubmittedMsg:
		m.Refresh()
		m.State = constants.StateSettings
		m.Issues = msg.Result.Issues.Issues
		return true, nil
	case StatusTickMsg:
		m.Refresh()
		return true, StatusTick()
	}
	return false, nil
}
