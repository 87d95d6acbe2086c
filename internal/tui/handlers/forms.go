package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/teetime/internal/constants"
	"github.com/julianstephens/teetime/internal/form"
	"github.com/julianstephens/teetime/internal/tui/state"
	"github.com/julianstephens/teetime/internal/utils"
)

func validateRange(label string, lo, hi int) func(string) error {
	return func(s string) error {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%s must be a whole number", label)
		}
		if i < lo || i > hi {
			return fmt.Errorf("%s must be between %d and %d", label, lo, hi)
		}
		return nil
	}
}

func validateTime(s string) error {
	if _, err := utils.Parse24Hour(s); err != nil {
		return fmt.Errorf("use HH:MM (24-hour)")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := utils.ParseDate(strings.TrimSpace(s), time.Local); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// NewSettingsForm creates the form for the scalar settings
func NewSettingsForm(fm *state.SettingsFormModel, toggle form.NotificationToggle) *huh.Form {
	notifOptions := make([]huh.Option[bool], 0, 2)
	for _, opt := range toggle.Options() {
		notifOptions = append(notifOptions, huh.NewOption(opt.Label, opt.KeepCurrent))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Playable Days").
				Description("Days of the week you can play").
				Options(huh.NewOptions(constants.Weekdays...)...).
				Value(&fm.Days),
			huh.NewInput().
				Title("Earliest Playable Time").
				Description("24-hour HH:MM").
				Value(&fm.EarliestTime).
				Validate(validateTime),
			huh.NewConfirm().
				Title("Include Holidays?").
				Affirmative("Yup!").
				Negative("Nope").
				Value(&fm.IncludeHolidays),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Season Start").
				Description("YYYY-MM-DD, only month and day are kept").
				Value(&fm.StartDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Season End").
				Description("YYYY-MM-DD, only month and day are kept").
				Value(&fm.EndDate).
				Validate(validateDate),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum Players (1-4)").
				Value(&fm.MinPlayers).
				Validate(validateRange("players", constants.MinPlayers, constants.MaxPlayers)),
			huh.NewInput().
				Title("Minimum Minutes Before Sunset (0-300)").
				Value(&fm.MinutesBefore).
				Validate(validateRange("minutes", constants.MinMinutesBeforeSunset, constants.MaxMinutesBeforeSunset)),
			huh.NewSelect[bool]().
				Title("Notifications").
				Options(notifOptions...).
				Value(&fm.KeepNotifications),
		),
	).WithTheme(huh.ThemeDracula())
}

// SettingsFormFromSnapshot copies the editable state into a form model.
func SettingsFormFromSnapshot(snap form.Snapshot) *state.SettingsFormModel {
	d := snap.Draft
	return &state.SettingsFormModel{
		Days:              append([]string(nil), d.PlayableDaysOfWeek...),
		EarliestTime:      d.EarliestPlayableTime,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		IncludeHolidays:   d.IncludeHolidays,
		MinutesBefore:     d.MinimumMinutesBeforeSunset,
		MinPlayers:        d.MinPlayers,
		KeepNotifications: snap.Toggle.KeepsCurrent(d.NotificationsEnabled),
	}
}

// ApplySettingsForm writes a completed form back into the controller.
func ApplySettingsForm(c *form.Controller, fm *state.SettingsFormModel) error {
	if err := c.SetPlayableDays(fm.Days); err != nil {
		return err
	}
	fields := []struct{ name, value string }{
		{constants.FieldEarliestPlayableTime, fm.EarliestTime},
		{constants.FieldStartDate, fm.StartDate},
		{constants.FieldEndDate, fm.EndDate},
		{constants.FieldIncludeHolidays, strconv.FormatBool(fm.IncludeHolidays)},
		{constants.FieldMinimumMinutesBeforeSunset, fm.MinutesBefore},
		{constants.FieldMinPlayers, fm.MinPlayers},
	}
	for _, f := range fields {
		if err := c.UpdateField(f.name, f.value); err != nil {
			return err
		}
	}
	c.ChooseNotificationOption(fm.KeepNotifications)
	return nil
}
