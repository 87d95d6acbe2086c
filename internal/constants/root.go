package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// StatusLevel is the severity of a transient status banner
type StatusLevel string

const (
	AppName            = "teetime"
	DefaultKeyringUser = "identity-email"
	DefaultAPIBaseURL  = "https://api.bethpage-black-bot.com"
	Version            = "v0.3.0"

	// DateFormat is the editing date format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the editing time format (HH:MM, 24-hour)
	TimeFormat = "15:04"

	// EnvFileName is read from the working directory and the config directory
	EnvFileName = ".env"

	// HTTP
	DefaultRequestTimeout = 30 * time.Second
	UserAgent             = AppName + "/" + Version

	// StatusTTL is how long a status banner stays visible
	StatusTTL = 3 * time.Second

	// Status levels
	StatusInfo    StatusLevel = "info"
	StatusSuccess StatusLevel = "success"
	StatusWarning StatusLevel = "warning"
	StatusError   StatusLevel = "error"

	// Session States
	StateLoading SessionState = iota
	StateSettings
	StateEditSettings
	StateEditDates
	StateSubmitting
)
