package constants

const (
	// Wire field names
	FieldPlayableDaysOfWeek         = "playable_days_of_week"
	FieldEarliestPlayableTime       = "earliest_playable_time"
	FieldExtraPlayableDays          = "extra_playable_days"
	FieldIncludeHolidays            = "include_holidays"
	FieldMinimumMinutesBeforeSunset = "minimum_minutes_before_sunset"
	FieldMinPlayers                 = "min_players"
	FieldNotificationsEnabled       = "notifications_enabled"
	FieldStartDate                  = "start_date"
	FieldEndDate                    = "end_date"

	// Defaults used until the server copy is loaded
	DefaultEarliestPlayableTime = "8:00am"
	DefaultSeasonStart          = "3/1"
	DefaultSeasonEnd            = "11/30"

	// Bounds
	MinMinutesBeforeSunset = 0
	MaxMinutesBeforeSunset = 300
	MinPlayers             = 1
	MaxPlayers             = 4

	// Status messages
	MsgFetchFailed     = "Failed to fetch current settings"
	MsgFormHasErrors   = "Errors found in form. Updates not saved."
	MsgSaved           = "Settings saved!"
	MsgSaveFailed      = "Failed to save settings"
	MsgInvalidLink     = "Invalid or expired link."
	MsgLinkCheckFailed = "Error validating the link."
	MsgInvalidEmail    = "Please enter a valid email address."
	MsgLinkSent        = "Check your email for the link to update your settings!"
	MsgRegistered      = "You're signed up! Watch your inbox for tee time alerts."
	MsgInvalidDate     = "Invalid date (format YYYY-MM-DD, today or later)"
)

// Weekdays lists the playable day names in display order.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}
