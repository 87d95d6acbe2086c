// Package form holds the editable state of a user's notification settings and
// the rules for loading it from and saving it to the backend.
package form

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/julianstephens/teetime/internal/constants"
	apperrors "github.com/julianstephens/teetime/internal/errors"
	"github.com/julianstephens/teetime/internal/logger"
	"github.com/julianstephens/teetime/internal/models"
	"github.com/julianstephens/teetime/internal/utils"
	"github.com/julianstephens/teetime/internal/validation"
)

var (
	ErrBusy     = errors.New("a request is already in progress")
	ErrDisposed = errors.New("form has been closed")
)

// Backend is the part of the API the controller needs.
type Backend interface {
	GetUserConfig(ctx context.Context, email string) (models.NotificationConfiguration, error)
	UpdateUserConfig(ctx context.Context, email string, cfg models.NotificationConfiguration) error
}

// Identity is whose settings are being edited.
type Identity struct {
	Email   string
	ViaLink bool // resolved from a one-time link
}

type State int

const (
	StateLoading State = iota
	StateReady
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Draft is the editing representation of a configuration. Times are 24-hour
// HH:MM, season dates are full YYYY-MM-DD and numbers are kept as typed.
type Draft struct {
	PlayableDaysOfWeek         []string
	EarliestPlayableTime       string
	IncludeHolidays            bool
	MinimumMinutesBeforeSunset string
	MinPlayers                 string
	NotificationsEnabled       bool
	StartDate                  string
	EndDate                    string
}

func (d Draft) clone() Draft {
	d.PlayableDaysOfWeek = append([]string(nil), d.PlayableDaysOfWeek...)
	return d
}

// Snapshot is a consistent copy of the controller state for rendering.
type Snapshot struct {
	State         State
	Identity      Identity
	Draft         Draft
	ExtraDays     []Entry
	ExtraHasError bool
	Toggle        NotificationToggle
	Status        Status
	Loaded        bool // a configuration has been applied from the server
}

type SubmitOutcome int

const (
	SubmitSaved SubmitOutcome = iota
	SubmitInvalid
	SubmitRejected
	SubmitBusy
	SubmitDisposed
)

func (o SubmitOutcome) String() string {
	switch o {
	case SubmitSaved:
		return "saved"
	case SubmitInvalid:
		return "invalid"
	case SubmitRejected:
		return "rejected"
	case SubmitBusy:
		return "busy"
	case SubmitDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// SubmitResult describes what a Submit did.
type SubmitResult struct {
	Outcome SubmitOutcome
	Payload models.NotificationConfiguration // what was sent, if anything
	Issues  validation.ValidationResult
	Err     error
	Reload  *LoadResult // the follow-up fetch after a save
}

// LoadResult describes what a Load did.
type LoadResult struct {
	Config  models.NotificationConfiguration
	Applied bool
	Stale   bool // superseded by a later load or by Close
	Err     error
}

type Option func(*Controller)

// WithClock sets the time source used for "today" and status expiry.
func WithClock(clock utils.Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// Controller owns one editable copy of a user's configuration.
// It is safe for concurrent use; backend calls run without holding the lock.
type Controller struct {
	mu sync.Mutex

	backend   Backend
	identity  Identity
	clock     utils.Clock
	validator *validation.Validator

	state         State
	draft         Draft
	extra         *ExtraDaysEditor
	extraHasError bool
	toggle        NotificationToggle
	status        Status
	loaded        bool

	loadGen  uint64
	disposed bool
}

func NewController(backend Backend, identity Identity, opts ...Option) *Controller {
	c := &Controller{
		backend:  backend,
		identity: identity,
		clock:    utils.SystemClock{},
		state:    StateReady,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.validator = validation.New(c.clock)
	c.extra = NewExtraDaysEditor(func(v string) bool {
		return utils.IsValidDateAt(v, c.clock.Now())
	})
	c.extra.OnErrorsChange = func(hasError bool) {
		c.extraHasError = hasError
	}
	c.draft = DefaultDraft(c.clock)
	return c
}

// DefaultDraft is shown until a configuration has been loaded.
func DefaultDraft(clock utils.Clock) Draft {
	year := clock.Now().Year()
	start, _ := utils.FormatMDToDate(constants.DefaultSeasonStart, year)
	end, _ := utils.FormatMDToDate(constants.DefaultSeasonEnd, year)
	earliest, _ := utils.To24Hour(constants.DefaultEarliestPlayableTime)
	return Draft{
		PlayableDaysOfWeek:   []string{},
		EarliestPlayableTime: earliest,
		StartDate:            start,
		EndDate:              end,
	}
}

func (c *Controller) setStatus(level constants.StatusLevel, msg string) {
	c.status = Status{Level: level, Message: msg, At: c.clock.Now()}
}

// Identity returns whose settings are being edited.
func (c *Controller) Identity() Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Status returns the current banner, or the zero Status once it has expired.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeStatus()
}

func (c *Controller) activeStatus() Status {
	if !c.status.Active(c.clock.Now()) {
		return Status{}
	}
	return c.status
}

// Snapshot returns a consistent copy of the editable state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:         c.state,
		Identity:      c.identity,
		Draft:         c.draft.clone(),
		ExtraDays:     c.extra.Entries(),
		ExtraHasError: c.extraHasError,
		Toggle:        c.toggle,
		Status:        c.activeStatus(),
		Loaded:        c.loaded,
	}
}

// Close disposes the controller. Results of requests still in flight are dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	c.loadGen++
}

// Load fetches the configuration and merges it into the editable state. On
// failure a warning status is set and the current values are kept.
func (c *Controller) Load(ctx context.Context) LoadResult {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return LoadResult{Stale: true, Err: ErrDisposed}
	}
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return LoadResult{Err: ErrBusy}
	}
	gen, email := c.beginLoadLocked()
	c.mu.Unlock()
	return c.finishLoad(ctx, gen, email)
}

// beginLoadLocked claims a new load generation. Callers hold mu.
func (c *Controller) beginLoadLocked() (uint64, string) {
	c.loadGen++
	c.state = StateLoading
	return c.loadGen, c.identity.Email
}

func (c *Controller) finishLoad(ctx context.Context, gen uint64, email string) LoadResult {
	var cfg models.NotificationConfiguration
	var err error
	if strings.TrimSpace(email) == "" {
		err = apperrors.Ef(apperrors.KindFetchFailure, "form.Load", "no email to load settings for")
	} else {
		cfg, err = c.backend.GetUserConfig(ctx, email)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed || gen != c.loadGen {
		logger.Debug("dropping superseded load", "generation", gen)
		return LoadResult{Stale: true, Err: err}
	}
	c.state = StateReady
	if err != nil {
		logger.Warn("failed to load settings", "email", email, "err", err)
		c.setStatus(constants.StatusWarning, constants.MsgFetchFailed)
		return LoadResult{Err: err}
	}
	c.apply(cfg)
	return LoadResult{Config: cfg, Applied: true}
}

// apply merges a fetched configuration into the draft. Callers hold mu.
func (c *Controller) apply(cfg models.NotificationConfiguration) {
	now := c.clock.Now()
	d := DefaultDraft(c.clock)

	d.PlayableDaysOfWeek = canonicalDays(cfg.PlayableDaysOfWeek)

	if t, err := utils.To24Hour(cfg.EarliestPlayableTime); err == nil {
		d.EarliestPlayableTime = t
	} else {
		logger.Warn("ignoring earliest playable time", "value", cfg.EarliestPlayableTime, "err", err)
	}

	d.IncludeHolidays = cfg.IncludeHolidays
	d.MinimumMinutesBeforeSunset = strconv.Itoa(cfg.MinimumMinutesBeforeSunset)
	d.MinPlayers = strconv.Itoa(cfg.MinPlayers)
	d.NotificationsEnabled = cfg.NotificationsEnabled

	if start, err := utils.FormatMDToDate(cfg.StartDate, now.Year()); err == nil {
		d.StartDate = start
	} else {
		logger.Warn("ignoring season start", "value", cfg.StartDate, "err", err)
	}
	if end, err := utils.FormatMDToDate(cfg.EndDate, now.Year()); err == nil {
		d.EndDate = end
	} else {
		logger.Warn("ignoring season end", "value", cfg.EndDate, "err", err)
	}

	c.draft = d
	c.toggle = NotificationToggle{CurrentlyEnabled: cfg.NotificationsEnabled}
	c.extra.Reset(pruneExtraDays(cfg.ExtraPlayableDays, c.clock))
	c.loaded = true
}

// pruneExtraDays normalizes legacy M/D/YYYY values and drops dates that have
// already passed. Malformed values are kept so the user sees them flagged.
func pruneExtraDays(values []string, clock utils.Clock) []string {
	now := clock.Now()
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = utils.NormalizeDate(v)
		if v == "" {
			continue
		}
		if _, err := utils.ParseDate(v, now.Location()); err == nil && !utils.IsValidDateAt(v, now) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// canonicalDays maps names to their canonical spelling, drops unknown and
// duplicate names, and orders them Monday first.
func canonicalDays(days []string) []string {
	seen := make(map[string]bool, len(days))
	out := make([]string, 0, len(days))
	for _, day := range days {
		name, ok := validation.CanonicalWeekday(day)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	sortWeekdays(out)
	return out
}

func sortWeekdays(days []string) {
	index := make(map[string]int, len(constants.Weekdays))
	for i, d := range constants.Weekdays {
		index[d] = i
	}
	sort.SliceStable(days, func(i, j int) bool {
		return index[days[i]] < index[days[j]]
	})
}

// UpdateField sets a scalar field by its wire name. Values are stored as typed;
// validation happens at submit.
func (c *Controller) UpdateField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case constants.FieldEarliestPlayableTime:
		c.draft.EarliestPlayableTime = strings.TrimSpace(value)
	case constants.FieldMinimumMinutesBeforeSunset:
		c.draft.MinimumMinutesBeforeSunset = strings.TrimSpace(value)
	case constants.FieldMinPlayers:
		c.draft.MinPlayers = strings.TrimSpace(value)
	case constants.FieldStartDate:
		c.draft.StartDate = strings.TrimSpace(value)
	case constants.FieldEndDate:
		c.draft.EndDate = strings.TrimSpace(value)
	case constants.FieldIncludeHolidays:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", name, err)
		}
		c.draft.IncludeHolidays = b
	case constants.FieldNotificationsEnabled:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", name, err)
		}
		c.draft.NotificationsEnabled = b
	case constants.FieldPlayableDaysOfWeek:
		var days []string
		for _, part := range strings.Split(value, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			day, ok := validation.CanonicalWeekday(part)
			if !ok {
				return fmt.Errorf("%q is not a day of the week", strings.TrimSpace(part))
			}
			days = append(days, day)
		}
		c.draft.PlayableDaysOfWeek = canonicalDays(days)
	case constants.FieldExtraPlayableDays:
		return fmt.Errorf("%s is edited one entry at a time", name)
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

// ToggleWeekday adds or removes a weekday. It is a no-op when the day is
// already in the requested state.
func (c *Controller) ToggleWeekday(day string, checked bool) error {
	name, ok := validation.CanonicalWeekday(day)
	if !ok {
		return fmt.Errorf("%q is not a day of the week", day)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	days := c.draft.PlayableDaysOfWeek
	idx := -1
	for i, d := range days {
		if d == name {
			idx = i
			break
		}
	}
	switch {
	case checked && idx < 0:
		days = append(days, name)
		sortWeekdays(days)
	case !checked && idx >= 0:
		days = append(days[:idx], days[idx+1:]...)
	}
	c.draft.PlayableDaysOfWeek = days
	return nil
}

// SetPlayableDays replaces the weekday set.
func (c *Controller) SetPlayableDays(days []string) error {
	out := make([]string, 0, len(days))
	for _, d := range days {
		name, ok := validation.CanonicalWeekday(d)
		if !ok {
			return fmt.Errorf("%q is not a day of the week", d)
		}
		out = append(out, name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.PlayableDaysOfWeek = canonicalDays(out)
	return nil
}

// SetNotificationsEnabled stores the raw value.
func (c *Controller) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.NotificationsEnabled = enabled
}

// ChooseNotificationOption applies a keep/flip choice from the toggle.
func (c *Controller) ChooseNotificationOption(keepCurrent bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.NotificationsEnabled = c.toggle.Resolve(keepCurrent)
}

// SetDraft replaces every scalar field at once.
func (c *Controller) SetDraft(d Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d.PlayableDaysOfWeek = canonicalDays(d.PlayableDaysOfWeek)
	c.draft = d
}

func (c *Controller) AddExtraDay() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.extra.Add()
}

func (c *Controller) RemoveExtraDay(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.extra.Remove(index)
}

func (c *Controller) UpdateExtraDay(index int, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.extra.Update(index, value)
}

// HasErrors reports the aggregate validity of the extra days list.
func (c *Controller) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.extraHasError
}

// Validate runs every submit-time check without sending anything.
func (c *Controller) Validate() validation.ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateLocked()
}

func (c *Controller) validateLocked() validation.ValidationResult {
	c.extra.Revalidate()
	result := c.validator.ValidateFields(validation.Fields{
		PlayableDaysOfWeek:         c.draft.PlayableDaysOfWeek,
		EarliestPlayableTime:       c.draft.EarliestPlayableTime,
		MinimumMinutesBeforeSunset: c.draft.MinimumMinutesBeforeSunset,
		MinPlayers:                 c.draft.MinPlayers,
		StartDate:                  c.draft.StartDate,
		EndDate:                    c.draft.EndDate,
	})
	for _, entry := range c.extra.Entries() {
		if issue := c.validator.ValidateExtraDate(entry.Value); issue != nil {
			result.Issues = append(result.Issues, *issue)
		}
	}
	return result
}

// Payload serializes the draft into the wire format.
func (c *Controller) Payload() (models.NotificationConfiguration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payloadLocked()
}

func (c *Controller) payloadLocked() (models.NotificationConfiguration, error) {
	const op = "form.Payload"
	earliest, err := utils.To12Hour(c.draft.EarliestPlayableTime)
	if err != nil {
		return models.NotificationConfiguration{}, err
	}
	minutes, err := strconv.Atoi(c.draft.MinimumMinutesBeforeSunset)
	if err != nil {
		return models.NotificationConfiguration{}, apperrors.Ef(apperrors.KindValidationFailure, op,
			"minimum minutes before sunset %q is not a number", c.draft.MinimumMinutesBeforeSunset)
	}
	players, err := strconv.Atoi(c.draft.MinPlayers)
	if err != nil {
		return models.NotificationConfiguration{}, apperrors.Ef(apperrors.KindValidationFailure, op,
			"minimum players %q is not a number", c.draft.MinPlayers)
	}
	return models.NotificationConfiguration{
		PlayableDaysOfWeek:         append([]string{}, c.draft.PlayableDaysOfWeek...),
		EarliestPlayableTime:       earliest,
		ExtraPlayableDays:          c.extra.Cleaned(),
		IncludeHolidays:            c.draft.IncludeHolidays,
		MinimumMinutesBeforeSunset: minutes,
		MinPlayers:                 players,
		NotificationsEnabled:       c.draft.NotificationsEnabled,
		StartDate:                  utils.FormatDateToMD(c.draft.StartDate),
		EndDate:                    utils.FormatDateToMD(c.draft.EndDate),
	}, nil
}

// Submit validates the draft and, if it is clean, sends it to the backend.
// A successful save is followed by a reload so the form shows what the server
// persisted. On rejection local edits are kept for another attempt.
func (c *Controller) Submit(ctx context.Context) SubmitResult {
	const op = "form.Submit"

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return SubmitResult{Outcome: SubmitDisposed, Err: ErrDisposed}
	}
	if c.state != StateReady {
		c.mu.Unlock()
		return SubmitResult{Outcome: SubmitBusy, Err: ErrBusy}
	}

	issues := c.validateLocked()
	if c.extraHasError || issues.HasIssues() {
		c.setStatus(constants.StatusWarning, constants.MsgFormHasErrors)
		c.mu.Unlock()
		logger.Debug("submit blocked by validation", "issues", len(issues.Issues))
		return SubmitResult{
			Outcome: SubmitInvalid,
			Issues:  issues,
			Err:     apperrors.Ef(apperrors.KindValidationFailure, op, "%s", strings.TrimSpace(issues.FormatReport())),
		}
	}

	payload, err := c.payloadLocked()
	if err != nil {
		c.setStatus(constants.StatusWarning, constants.MsgFormHasErrors)
		c.mu.Unlock()
		return SubmitResult{Outcome: SubmitInvalid, Issues: issues, Err: err}
	}
	c.state = StateSubmitting
	email := c.identity.Email
	c.mu.Unlock()

	err = c.backend.UpdateUserConfig(ctx, email, payload)

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return SubmitResult{Outcome: SubmitDisposed, Payload: payload, Err: ErrDisposed}
	}
	c.state = StateReady
	if err != nil {
		c.setStatus(constants.StatusError, constants.MsgSaveFailed)
		c.mu.Unlock()
		logger.Warn("failed to save settings", "email", email, "err", err)
		return SubmitResult{Outcome: SubmitRejected, Payload: payload, Err: err}
	}
	c.setStatus(constants.StatusSuccess, constants.MsgSaved)
	// The reload starts before the lock is released so no other submit can
	// slip in ahead of it.
	gen, email := c.beginLoadLocked()
	c.mu.Unlock()
	logger.Info("settings saved", "email", email)

	reload := c.finishLoad(ctx, gen, email)
	return SubmitResult{Outcome: SubmitSaved, Payload: payload, Reload: &reload}
}
