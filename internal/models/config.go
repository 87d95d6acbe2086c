package models

// NotificationConfiguration is the wire form of a user's alert preferences.
type NotificationConfiguration struct {
	PlayableDaysOfWeek         []string `json:"playable_days_of_week"`         // weekday names, e.g. "Saturday"
	EarliestPlayableTime       string   `json:"earliest_playable_time"`        // 12-hour, e.g. "8:00am"
	ExtraPlayableDays          []string `json:"extra_playable_days"`           // YYYY-MM-DD one-off dates
	IncludeHolidays            bool     `json:"include_holidays"`              // treat holidays as playable
	MinimumMinutesBeforeSunset int      `json:"minimum_minutes_before_sunset"` // 0-300
	MinPlayers                 int      `json:"min_players"`                   // 1-4
	NotificationsEnabled       bool     `json:"notifications_enabled"`         // false while paused
	StartDate                  string   `json:"start_date"`                    // season start, M/D
	EndDate                    string   `json:"end_date"`                      // season end, M/D
}

// UpdateUserConfigRequest is the body of /updateUserConfig.
type UpdateUserConfigRequest struct {
	NotificationConfiguration
	Email string `json:"email"`
}

// Clone returns a deep copy so edits never alias the slices of the original.
func (c NotificationConfiguration) Clone() NotificationConfiguration {
	out := c
	out.PlayableDaysOfWeek = append([]string(nil), c.PlayableDaysOfWeek...)
	out.ExtraPlayableDays = append([]string(nil), c.ExtraPlayableDays...)
	return out
}
