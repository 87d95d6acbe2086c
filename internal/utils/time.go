package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/julianstephens/teetime/internal/errors"
)

// Meridiem is the am/pm marker of a 12-hour time.
type Meridiem string

const (
	AM Meridiem = "am"
	PM Meridiem = "pm"
)

// Time12 is a parsed 12-hour clock time.
type Time12 struct {
	Hour     int // 1-12
	Minute   int // 0-59
	Meridiem Meridiem
}

// Time24 is a parsed 24-hour clock time.
type Time24 struct {
	Hour   int // 0-23
	Minute int // 0-59
}

var (
	isoDateRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	clockRegex   = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	mdRegex      = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
	mdyRegex     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

func timeError(op, input, reason string) error {
	return apperrors.Ef(apperrors.KindInvalidTimeFormat, op, "%q: %s", input, reason)
}

func dateError(op, input, reason string) error {
	return apperrors.Ef(apperrors.KindInvalidDateFormat, op, "%q: %s", input, reason)
}

// Parse12Hour parses "H:MMam" or "H:MM pm" (case-insensitive).
func Parse12Hour(s string) (Time12, error) {
	const op = "utils.Parse12Hour"
	in := strings.ToLower(strings.TrimSpace(s))

	var mer Meridiem
	switch {
	case strings.HasSuffix(in, string(AM)):
		mer = AM
	case strings.HasSuffix(in, string(PM)):
		mer = PM
	default:
		return Time12{}, timeError(op, s, "missing am/pm marker")
	}
	clock := strings.TrimSpace(strings.TrimSuffix(in, string(mer)))

	m := clockRegex.FindStringSubmatch(clock)
	if m == nil {
		return Time12{}, timeError(op, s, "expected H:MM before the am/pm marker")
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 {
		return Time12{}, timeError(op, s, "hour must be 1-12")
	}
	if minute > 59 {
		return Time12{}, timeError(op, s, "minute must be 00-59")
	}
	return Time12{Hour: hour, Minute: minute, Meridiem: mer}, nil
}

// Parse24Hour parses "HH:MM" or "H:MM".
func Parse24Hour(s string) (Time24, error) {
	const op = "utils.Parse24Hour"
	m := clockRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Time24{}, timeError(op, s, "expected HH:MM")
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 {
		return Time24{}, timeError(op, s, "hour must be 00-23")
	}
	if minute > 59 {
		return Time24{}, timeError(op, s, "minute must be 00-59")
	}
	return Time24{Hour: hour, Minute: minute}, nil
}

// To24 converts to the 24-hour clock: 12am is 00, 12pm is 12.
func (t Time12) To24() Time24 {
	hour := t.Hour % 12
	if t.Meridiem == PM {
		hour += 12
	}
	return Time24{Hour: hour, Minute: t.Minute}
}

// To12 converts to the 12-hour clock: 00 is 12am, 12 is 12pm.
func (t Time24) To12() Time12 {
	mer := AM
	if t.Hour >= 12 {
		mer = PM
	}
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return Time12{Hour: hour, Minute: t.Minute, Meridiem: mer}
}

// String renders the wire form, e.g. 8:05am.
func (t Time12) String() string {
	return fmt.Sprintf("%d:%02d%s", t.Hour, t.Minute, t.Meridiem)
}

// String renders the editing form, e.g. 08:05.
func (t Time24) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// To24Hour converts a 12-hour time ("1:00pm") to zero-padded 24-hour form ("13:00").
func To24Hour(time12 string) (string, error) {
	t, err := Parse12Hour(time12)
	if err != nil {
		return "", err
	}
	return t.To24().String(), nil
}

// To12Hour converts a 24-hour time ("00:30") to the wire 12-hour form ("12:30am").
func To12Hour(time24 string) (string, error) {
	t, err := Parse24Hour(time24)
	if err != nil {
		return "", err
	}
	return t.To12().String(), nil
}

// ParseDate parses a strict YYYY-MM-DD calendar date in loc.
// Components that do not form a real date (2026-02-30) are rejected.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	const op = "utils.ParseDate"
	m := isoDateRegex.FindStringSubmatch(dateStr)
	if m == nil {
		return time.Time{}, dateError(op, dateStr, "expected YYYY-MM-DD")
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, dateError(op, dateStr, "not a calendar date")
	}
	return date, nil
}

// IsValidDateAt reports whether dateStr is a real YYYY-MM-DD date that is not
// before the calendar day of now. Today itself is valid.
func IsValidDateAt(dateStr string, now time.Time) bool {
	date, err := ParseDate(dateStr, now.Location())
	if err != nil {
		return false
	}
	return !date.Before(StartOfDay(now))
}

// IsValidDate is IsValidDateAt against the wall clock.
func IsValidDate(dateStr string) bool {
	return IsValidDateAt(dateStr, time.Now())
}

// FormatDateToMD converts YYYY-MM-DD to M/D without leading zeros.
// Input that does not look like YYYY-MM-DD is returned unchanged.
func FormatDateToMD(dateStr string) string {
	m := isoDateRegex.FindStringSubmatch(dateStr)
	if m == nil {
		return dateStr
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return fmt.Sprintf("%d/%d", month, day)
}

// FormatMDToDate converts M/D to YYYY-MM-DD in year. A year of 0 means the
// wall-clock year; callers that own a Clock pass its year instead.
// Feb 29 falls back to Feb 28 outside leap years so a stored leap-day season
// boundary stays a real date. Other impossible days (4/31) are rejected.
func FormatMDToDate(mdStr string, year int) (string, error) {
	const op = "utils.FormatMDToDate"
	m := mdRegex.FindStringSubmatch(strings.TrimSpace(mdStr))
	if m == nil {
		return "", dateError(op, mdStr, "expected M/D")
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return "", dateError(op, mdStr, "month must be 1-12")
	}
	if day < 1 || day > 31 {
		return "", dateError(op, mdStr, "day must be 1-31")
	}
	if year == 0 {
		year = time.Now().Year()
	}
	if month == 2 && day == 29 && !isLeapYear(year) {
		day = 28
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if int(date.Month()) != month || date.Day() != day {
		return "", dateError(op, mdStr, "not a calendar date")
	}
	return date.Format("2006-01-02"), nil
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// NormalizeDate rewrites legacy M/D/YYYY values as YYYY-MM-DD.
// Anything else is returned trimmed but otherwise unchanged.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	m := mdyRegex.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
}
