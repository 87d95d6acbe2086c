package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/teetime/internal/constants"
	"github.com/julianstephens/teetime/internal/utils"
)

// IssueType represents the kind of problem found in a field
type IssueType string

const (
	IssueUnknownWeekday   IssueType = "unknown_weekday"
	IssueDuplicateWeekday IssueType = "duplicate_weekday"
	IssueInvalidTime      IssueType = "invalid_time"
	IssueOutOfRange       IssueType = "out_of_range"
	IssueNotANumber       IssueType = "not_a_number"
	IssueInvalidDate      IssueType = "invalid_date"
	IssuePastDate         IssueType = "past_date"
)

// Issue is one problem with one field
type Issue struct {
	Type        IssueType
	Field       string // wire field name
	Value       string
	Description string
}

// ValidationResult contains all detected issues
type ValidationResult struct {
	Issues []Issue
}

// HasIssues returns true if there are any issues
func (vr ValidationResult) HasIssues() bool {
	return len(vr.Issues) > 0
}

// ForField returns the issues reported against one field.
func (vr ValidationResult) ForField(field string) []Issue {
	var out []Issue
	for _, issue := range vr.Issues {
		if issue.Field == field {
			out = append(out, issue)
		}
	}
	return out
}

// FormatReport returns a human-readable report of all issues
func (vr ValidationResult) FormatReport() string {
	if !vr.HasIssues() {
		return "No problems found."
	}

	var b strings.Builder
	b.WriteString("Problems found:\n")
	for _, issue := range vr.Issues {
		fmt.Fprintf(&b, "- %s\n", issue.Description)
	}
	return b.String()
}

func (vr *ValidationResult) add(t IssueType, field, value, format string, args ...interface{}) {
	vr.Issues = append(vr.Issues, Issue{
		Type:        t,
		Field:       field,
		Value:       value,
		Description: fmt.Sprintf(format, args...),
	})
}

// Fields holds the editable, string-typed representation of a configuration.
type Fields struct {
	PlayableDaysOfWeek         []string
	EarliestPlayableTime       string // HH:MM
	MinimumMinutesBeforeSunset string
	MinPlayers                 string
	StartDate                  string // YYYY-MM-DD
	EndDate                    string // YYYY-MM-DD
}

// Validator checks configuration fields
type Validator struct {
	clock utils.Clock
}

// New creates a new Validator. A nil clock means the system clock.
func New(clock utils.Clock) *Validator {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &Validator{clock: clock}
}

// ValidateFields checks every scalar field. Extra dates are handled by ValidateExtraDate.
func (v *Validator) ValidateFields(f Fields) ValidationResult {
	var result ValidationResult

	seen := make(map[string]bool, len(f.PlayableDaysOfWeek))
	for _, day := range f.PlayableDaysOfWeek {
		name, ok := CanonicalWeekday(day)
		if !ok {
			result.add(IssueUnknownWeekday, constants.FieldPlayableDaysOfWeek, day,
				"%q is not a day of the week", day)
			continue
		}
		if seen[name] {
			result.add(IssueDuplicateWeekday, constants.FieldPlayableDaysOfWeek, day,
				"%s is listed more than once", name)
			continue
		}
		seen[name] = true
	}

	if _, err := utils.Parse24Hour(f.EarliestPlayableTime); err != nil {
		result.add(IssueInvalidTime, constants.FieldEarliestPlayableTime, f.EarliestPlayableTime,
			"earliest playable time %q must be HH:MM", f.EarliestPlayableTime)
	}

	checkRange(&result, constants.FieldMinimumMinutesBeforeSunset, "minimum minutes before sunset",
		f.MinimumMinutesBeforeSunset, constants.MinMinutesBeforeSunset, constants.MaxMinutesBeforeSunset)
	checkRange(&result, constants.FieldMinPlayers, "minimum players",
		f.MinPlayers, constants.MinPlayers, constants.MaxPlayers)

	loc := v.clock.Now().Location()
	for _, d := range []struct{ field, label, value string }{
		{constants.FieldStartDate, "season start", f.StartDate},
		{constants.FieldEndDate, "season end", f.EndDate},
	} {
		if _, err := utils.ParseDate(d.value, loc); err != nil {
			result.add(IssueInvalidDate, d.field, d.value, "%s %q must be a YYYY-MM-DD date", d.label, d.value)
		}
	}

	return result
}

func checkRange(result *ValidationResult, field, label, value string, lo, hi int) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		result.add(IssueNotANumber, field, value, "%s %q must be a whole number", label, value)
		return
	}
	if n < lo || n > hi {
		result.add(IssueOutOfRange, field, value, "%s must be between %d and %d (got %d)", label, lo, hi, n)
	}
}

// ValidateExtraDate checks one extra playable date. Blank values are allowed.
func (v *Validator) ValidateExtraDate(value string) *Issue {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	now := v.clock.Now()
	if _, err := utils.ParseDate(value, now.Location()); err != nil {
		return &Issue{
			Type:        IssueInvalidDate,
			Field:       constants.FieldExtraPlayableDays,
			Value:       value,
			Description: fmt.Sprintf("%q is not a YYYY-MM-DD date", value),
		}
	}
	if !utils.IsValidDateAt(value, now) {
		return &Issue{
			Type:        IssuePastDate,
			Field:       constants.FieldExtraPlayableDays,
			Value:       value,
			Description: fmt.Sprintf("%s is in the past", value),
		}
	}
	return nil
}

// CanonicalWeekday matches a weekday name case-insensitively, accepting
// three-letter abbreviations, and returns the canonical name.
func CanonicalWeekday(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return "", false
	}
	for _, day := range constants.Weekdays {
		lower := strings.ToLower(day)
		if s == lower || s == lower[:3] {
			return day, true
		}
	}
	return "", false
}
