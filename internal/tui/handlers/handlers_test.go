package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/teetime/internal/api"
	"github.com/julianstephens/teetime/internal/api/apitest"
	"github.com/julianstephens/teetime/internal/constants"
	"github.com/julianstephens/teetime/internal/form"
	"github.com/julianstephens/teetime/internal/models"
	"github.com/julianstephens/teetime/internal/tui/components/extradays"
	"github.com/julianstephens/teetime/internal/tui/components/settings"
	"github.com/julianstephens/teetime/internal/tui/state"
	"github.com/julianstephens/teetime/internal/utils"
)

const testEmail = "golfer@example.com"

func setup(t *testing.T) (*apitest.Backend, *state.Model) {
	t.Helper()
	b := apitest.NewBackend()
	t.Cleanup(b.Close)
	b.SetConfig(testEmail, models.NotificationConfiguration{
		PlayableDaysOfWeek:         []string{"Saturday"},
		EarliestPlayableTime:       "7:00am",
		ExtraPlayableDays:          []string{},
		MinimumMinutesBeforeSunset: 90,
		MinPlayers:                 3,
		NotificationsEnabled:       true,
		StartDate:                  "3/15",
		EndDate:                    "11/1",
	})

	clock := utils.FixedClock(time.Date(2026, 2, 13, 9, 0, 0, 0, time.UTC))
	c := form.NewController(api.NewClient(b.URL()), form.Identity{Email: testEmail}, form.WithClock(clock))
	t.Cleanup(c.Close)

	m := state.New(context.Background(), c)
	msg := LoadCmd(&m)()
	handled, _ := HandleResultMessages(&m, msg)
	require.True(t, handled)
	require.Equal(t, constants.StateSettings, m.State)
	return b, &m
}

func TestSettingsFormRoundTrip(t *testing.T) {
	_, m := setup(t)

	fm := SettingsFormFromSnapshot(m.Snapshot)
	assert.Equal(t, []string{"Saturday"}, fm.Days)
	assert.Equal(t, "07:00", fm.EarliestTime)
	assert.Equal(t, "2026-03-15", fm.StartDate)
	assert.Equal(t, "90", fm.MinutesBefore)
	assert.Equal(t, "3", fm.MinPlayers)
	assert.True(t, fm.KeepNotifications)

	fm.Days = []string{"Sunday", "Friday"}
	fm.EarliestTime = "12:15"
	fm.MinPlayers = "4"
	fm.KeepNotifications = false
	require.NoError(t, ApplySettingsForm(m.Controller, fm))

	payload, err := m.Controller.Payload()
	require.NoError(t, err)
	assert.Equal(t, []string{"Friday", "Sunday"}, payload.PlayableDaysOfWeek)
	assert.Equal(t, "12:15pm", payload.EarliestPlayableTime)
	assert.Equal(t, 4, payload.MinPlayers)
	assert.False(t, payload.NotificationsEnabled, "pause chosen")
	assert.Equal(t, "3/15", payload.StartDate)
}

func TestSubmitFlow(t *testing.T) {
	b, m := setup(t)

	m.Controller.ChooseNotificationOption(false)
	msg := SubmitCmd(m)()
	handled, _ := HandleResultMessages(m, msg)
	require.True(t, handled)

	sub := msg.(SubmittedMsg)
	assert.Equal(t, form.SubmitSaved, sub.Result.Outcome)
	assert.Equal(t, constants.StateSettings, m.State)
	assert.Equal(t, constants.MsgSaved, m.Snapshot.Status.Message)
	assert.False(t, m.Snapshot.Toggle.CurrentlyEnabled)

	stored, _ := b.Config(testEmail)
	assert.False(t, stored.NotificationsEnabled)
}

func TestSubmitBlockedShowsIssues(t *testing.T) {
	b, m := setup(t)

	HandleDatesMessages(m, extradays.UpdateMsg{Index: 0, Value: "2020-01-01"})
	assert.True(t, m.Snapshot.ExtraHasError)

	msg := SubmitCmd(m)()
	HandleResultMessages(m, msg)
	assert.NotEmpty(t, m.Issues)
	assert.Equal(t, constants.MsgFormHasErrors, m.Snapshot.Status.Message)
	assert.Equal(t, 0, b.CallCount(api.PathUpdateUserConfig))
}

func TestDatesMessages(t *testing.T) {
	_, m := setup(t)

	handled, _ := HandleSettingsMessages(m, settings.EditDatesMsg{})
	require.True(t, handled)
	assert.Equal(t, constants.StateEditDates, m.State)

	handled, _ = HandleDatesMessages(m, extradays.AddMsg{})
	assert.True(t, handled)
	assert.Len(t, m.Snapshot.ExtraDays, 1, "add refused while the only row is blank")

	HandleDatesMessages(m, extradays.UpdateMsg{Index: 0, Value: "2026-07-04"})
	_, cmd := HandleDatesMessages(m, extradays.AddMsg{})
	assert.NotNil(t, cmd, "new row starts in edit mode")
	assert.Len(t, m.Snapshot.ExtraDays, 2)
	assert.Equal(t, 1, m.DatesModel.Cursor())
	assert.True(t, m.DatesModel.Editing())

	HandleDatesMessages(m, extradays.RemoveMsg{Index: 0})
	assert.Equal(t, []form.Entry{{}}, m.Snapshot.ExtraDays)

	HandleDatesMessages(m, extradays.DoneMsg{})
	assert.Equal(t, constants.StateSettings, m.State)
}

func TestEditSettingsMessageBuildsForm(t *testing.T) {
	_, m := setup(t)

	handled, cmd := HandleSettingsMessages(m, settings.EditSettingsMsg{})
	require.True(t, handled)
	assert.NotNil(t, cmd)
	assert.Equal(t, constants.StateEditSettings, m.State)
	require.NotNil(t, m.Form)
	require.NotNil(t, m.SettingsForm)
	assert.Equal(t, "07:00", m.SettingsForm.EarliestTime)
}

func TestValidators(t *testing.T) {
	players := validateRange("players", 1, 4)
	assert.NoError(t, players("1"))
	assert.NoError(t, players(" 4 "))
	assert.Error(t, players("0"))
	assert.Error(t, players("x"))

	assert.NoError(t, validateTime("06:30"))
	assert.Error(t, validateTime("6:30am"))

	assert.NoError(t, validateDate("2026-03-01"))
	assert.Error(t, validateDate("3/1"))
}
