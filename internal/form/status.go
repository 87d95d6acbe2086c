package form

import (
	"time"

	"github.com/julianstephens/teetime/internal/constants"
)

// Status is a transient banner shown to the user.
type Status struct {
	Level   constants.StatusLevel
	Message string
	At      time.Time
}

func (s Status) IsZero() bool {
	return s.Message == ""
}

// Active reports whether the status is still within its display window at now.
func (s Status) Active(now time.Time) bool {
	return !s.IsZero() && now.Sub(s.At) < constants.StatusTTL
}
