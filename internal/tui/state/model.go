package state

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/teetime/internal/constants"
	"github.com/julianstephens/teetime/internal/form"
	"github.com/julianstephens/teetime/internal/tui/components/extradays"
	"github.com/julianstephens/teetime/internal/tui/components/settings"
	"github.com/julianstephens/teetime/internal/validation"
)

// SettingsFormModel is the huh-bound copy of the scalar fields
type SettingsFormModel struct {
	Days              []string
	EarliestTime      string // HH:MM
	StartDate         string // YYYY-MM-DD
	EndDate           string // YYYY-MM-DD
	IncludeHolidays   bool
	MinutesBefore     string
	MinPlayers        string
	KeepNotifications bool
}

// Model represents the shared state for the TUI
type Model struct {
	Ctx        context.Context
	Controller *form.Controller

	State         constants.SessionState
	PreviousState constants.SessionState
	Keys          KeyMap
	Help          help.Model
	Spinner       spinner.Model

	Snapshot      form.Snapshot
	SettingsModel settings.Model
	DatesModel    extradays.Model

	Form         *huh.Form
	SettingsForm *SettingsFormModel

	Issues   []validation.Issue // from the last blocked submit
	Quitting bool
	Width    int
	Height   int
}

// New creates a new state Model
func New(ctx context.Context, controller *form.Controller) Model {
	snap := controller.Snapshot()
	return Model{
		Ctx:           ctx,
		Controller:    controller,
		State:         constants.StateLoading,
		Keys:          DefaultKeyMap(),
		Help:          help.New(),
		Spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		Snapshot:      snap,
		SettingsModel: settings.New(snap, 0, 0),
		DatesModel:    extradays.New(snap.ExtraDays),
	}
}

// Refresh re-reads the controller into the view models.
func (m *Model) Refresh() {
	m.Snapshot = m.Controller.Snapshot()
	m.SettingsModel.SetSnapshot(m.Snapshot)
	m.DatesModel.SetEntries(m.Snapshot.ExtraDays)
}

// Busy reports whether a load or submit is outstanding.
func (m *Model) Busy() bool {
	return m.Snapshot.State != form.StateReady
}
