package settings

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/julianstephens/teetime/internal/cli"
	"github.com/julianstephens/teetime/internal/constants"
	apperrors "github.com/julianstephens/teetime/internal/errors"
	"github.com/julianstephens/teetime/internal/form"
	"github.com/julianstephens/teetime/internal/models"
)

type ConfigShowCmd struct {
	cli.IdentityFlags `embed:""`

	JSON bool `help:"Print the stored configuration as JSON."`
}

func (c *ConfigShowCmd) Run(ctx *cli.Context) error {
	id, err := ctx.ResolveIdentity(c.IdentityFlags)
	if err != nil {
		return err
	}
	cfg, err := ctx.Client.GetUserConfig(ctx.Context(), id.Email)
	if err != nil {
		return fmt.Errorf("%s: %w", constants.MsgFetchFailed, err)
	}

	if c.JSON {
		enc := json.NewEncoder(ctx.Stdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}
	printConfig(ctx.Stdout(), id.Email, cfg)
	return nil
}

func printConfig(w io.Writer, email string, cfg models.NotificationConfiguration) {
	days := "(none)"
	if len(cfg.PlayableDaysOfWeek) > 0 {
		days = strings.Join(cfg.PlayableDaysOfWeek, ", ")
	}
	extra := "(none)"
	if len(cfg.ExtraPlayableDays) > 0 {
		extra = strings.Join(cfg.ExtraPlayableDays, ", ")
	}
	status := "on"
	if !cfg.NotificationsEnabled {
		status = "paused"
	}

	fmt.Fprintf(w, "Settings for %s:\n", email)
	fmt.Fprintf(w, "  Notifications:         %s\n", status)
	fmt.Fprintf(w, "  Playable Days:         %s\n", days)
	fmt.Fprintf(w, "  Earliest Tee Time:     %s\n", cfg.EarliestPlayableTime)
	fmt.Fprintf(w, "  Season:                %s - %s\n", cfg.StartDate, cfg.EndDate)
	fmt.Fprintf(w, "  Include Holidays:      %v\n", cfg.IncludeHolidays)
	fmt.Fprintf(w, "  Min Before Sunset:     %d min\n", cfg.MinimumMinutesBeforeSunset)
	fmt.Fprintf(w, "  Min Players:           %d\n", cfg.MinPlayers)
	fmt.Fprintf(w, "  Extra Playable Days:   %s\n", extra)
}

type ConfigSetCmd struct {
	cli.IdentityFlags `embed:""`

	Days                *string  `help:"Comma-separated playable weekdays, e.g. sat,sun (empty string clears)."`
	Earliest            *string  `help:"Earliest playable time, e.g. 8:00am or 14:30."`
	Start               *string  `help:"Season start as M/D or YYYY-MM-DD."`
	End                 *string  `help:"Season end as M/D or YYYY-MM-DD."`
	Holidays            *bool    `help:"Treat holidays as playable days."`
	MinutesBeforeSunset *int     `help:"Minimum minutes between tee time and sunset (0-300)."`
	MinPlayers          *int     `help:"Minimum open spots in a tee time (1-4)."`
	AddDate             []string `help:"Add an extra playable date (YYYY-MM-DD or phrases like 'next saturday')." sep:"none"`
	RemoveDate          []string `help:"Remove an extra playable date." sep:"none"`
	ClearDates          bool     `help:"Remove every extra playable date."`
	Pause               bool     `help:"Pause notifications." xor:"notify"`
	Resume              bool     `help:"Resume notifications." xor:"notify"`
	DryRun              bool     `help:"Validate and print the payload without saving."`
}

func (c *ConfigSetCmd) Run(ctx *cli.Context) error {
	id, err := ctx.ResolveIdentity(c.IdentityFlags)
	if err != nil {
		return err
	}

	controller := ctx.NewController(id)
	defer controller.Close()

	// Saving over defaults would wipe the stored settings.
	if res := controller.Load(ctx.Context()); res.Err != nil {
		return fmt.Errorf("%s: %w", constants.MsgFetchFailed, res.Err)
	}

	updated, err := c.apply(ctx, controller)
	if err != nil {
		return err
	}
	if !updated {
		fmt.Fprintln(ctx.Stdout(), "No changes specified. Use 'teetime config show' to view settings or flags to update them.")
		return nil
	}

	if c.DryRun {
		issues := controller.Validate()
		if issues.HasIssues() {
			fmt.Fprint(ctx.Stdout(), issues.FormatReport())
			return apperrors.Ef(apperrors.KindValidationFailure, "settings.ConfigSet", "%s", constants.MsgFormHasErrors)
		}
		payload, err := controller.Payload()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(ctx.Stdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	return Save(ctx, controller)
}

// Save submits the controller and reports the outcome.
func Save(ctx *cli.Context, controller *form.Controller) error {
	res := controller.Submit(ctx.Context())
	switch res.Outcome {
	case form.SubmitSaved:
		fmt.Fprintf(ctx.Stdout(), "✓ %s\n", constants.MsgSaved)
		if res.Reload != nil && res.Reload.Err == nil {
			printConfig(ctx.Stdout(), controller.Identity().Email, res.Reload.Config)
		}
		return nil
	case form.SubmitInvalid:
		if res.Issues.HasIssues() {
			fmt.Fprint(ctx.Stdout(), res.Issues.FormatReport())
		}
		return apperrors.Ef(apperrors.KindValidationFailure, "settings.Save", "%s", constants.MsgFormHasErrors)
	case form.SubmitRejected:
		return fmt.Errorf("%s: %w", constants.MsgSaveFailed, res.Err)
	default:
		return res.Err
	}
}

func (c *ConfigSetCmd) apply(ctx *cli.Context, controller *form.Controller) (bool, error) {
	updated := false
	now := ctx.Now()

	if c.Days != nil {
		days, err := cli.ParseWeekdays(*c.Days)
		if err != nil {
			return false, err
		}
		if err := controller.SetPlayableDays(days); err != nil {
			return false, err
		}
		updated = true
	}
	if c.Earliest != nil {
		t, err := cli.ParseTime(*c.Earliest)
		if err != nil {
			return false, err
		}
		if err := controller.UpdateField(constants.FieldEarliestPlayableTime, t); err != nil {
			return false, err
		}
		updated = true
	}
	if c.Start != nil {
		d, err := cli.ParseSeasonDate(*c.Start, now)
		if err != nil {
			return false, err
		}
		if err := controller.UpdateField(constants.FieldStartDate, d); err != nil {
			return false, err
		}
		updated = true
	}
	if c.End != nil {
		d, err := cli.ParseSeasonDate(*c.End, now)
		if err != nil {
			return false, err
		}
		if err := controller.UpdateField(constants.FieldEndDate, d); err != nil {
			return false, err
		}
		updated = true
	}
	if c.Holidays != nil {
		if err := controller.UpdateField(constants.FieldIncludeHolidays, fmt.Sprint(*c.Holidays)); err != nil {
			return false, err
		}
		updated = true
	}
	if c.MinutesBeforeSunset != nil {
		if err := controller.UpdateField(constants.FieldMinimumMinutesBeforeSunset, fmt.Sprint(*c.MinutesBeforeSunset)); err != nil {
			return false, err
		}
		updated = true
	}
	if c.MinPlayers != nil {
		if err := controller.UpdateField(constants.FieldMinPlayers, fmt.Sprint(*c.MinPlayers)); err != nil {
			return false, err
		}
		updated = true
	}

	if c.ClearDates {
		clearExtraDays(controller)
		updated = true
	}
	for _, raw := range c.RemoveDate {
		date, err := cli.ParseExtraDate(raw, now)
		if err != nil {
			return false, err
		}
		if !removeExtraDay(controller, date) {
			return false, fmt.Errorf("%s is not an extra playable date", date)
		}
		updated = true
	}
	for _, raw := range c.AddDate {
		date, err := cli.ParseExtraDate(raw, now)
		if err != nil {
			return false, err
		}
		addExtraDay(controller, date)
		updated = true
	}

	if c.Pause || c.Resume {
		// Choosing "keep" when the current state already matches.
		toggle := controller.Snapshot().Toggle
		controller.ChooseNotificationOption(toggle.KeepsCurrent(c.Resume))
		updated = true
	}
	return updated, nil
}

func addExtraDay(controller *form.Controller, date string) {
	entries := controller.Snapshot().ExtraDays
	for _, e := range entries {
		if e.Value == date {
			return
		}
	}
	last := len(entries) - 1
	if last >= 0 && strings.TrimSpace(entries[last].Value) == "" {
		controller.UpdateExtraDay(last, date)
		return
	}
	controller.AddExtraDay()
	controller.UpdateExtraDay(last+1, date)
}

func removeExtraDay(controller *form.Controller, date string) bool {
	entries := controller.Snapshot().ExtraDays
	for i, e := range entries {
		if e.Value != date {
			continue
		}
		if len(entries) == 1 {
			return controller.UpdateExtraDay(0, "")
		}
		return controller.RemoveExtraDay(i)
	}
	return false
}

func clearExtraDays(controller *form.Controller) {
	for n := len(controller.Snapshot().ExtraDays); n > 1; n-- {
		controller.RemoveExtraDay(n - 1)
	}
	controller.UpdateExtraDay(0, "")
}
