// Package tui is the interactive settings editor.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/teetime/internal/constants"
	"github.com/julianstephens/teetime/internal/form"
	"github.com/julianstephens/teetime/internal/tui/handlers"
	"github.com/julianstephens/teetime/internal/tui/state"
)

type Model struct {
	state.Model
	cancel context.CancelFunc
}

// NewModel wraps a controller. The context passed to backend calls is
// cancelled when the program quits.
func NewModel(ctx context.Context, controller *form.Controller) Model {
	ctx, cancel := context.WithCancel(ctx)
	return Model{
		Model:  state.New(ctx, controller),
		cancel: cancel,
	}
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, controller *form.Controller, opts ...tea.ProgramOption) error {
	m := NewModel(ctx, controller)
	defer m.Close()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

// Close cancels outstanding requests and disposes the controller.
func (m Model) Close() {
	m.cancel()
	m.Controller.Close()
}

func (m Model) ShortHelp() []key.Binding {
	switch m.State {
	case constants.StateEditDates:
		return []key.Binding{m.Keys.Add, m.Keys.Delete, m.Keys.Enter, m.Keys.Back}
	default:
		return m.Keys.ShortHelp()
	}
}

func (m Model) FullHelp() [][]key.Binding {
	return m.Keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(handlers.BeginLoad(&m.Model), handlers.StatusTick())
}
