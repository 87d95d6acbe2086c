package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/mattn/go-isatty"

	"github.com/julianstephens/teetime/internal/api"
	"github.com/julianstephens/teetime/internal/config"
	"github.com/julianstephens/teetime/internal/constants"
	apperrors "github.com/julianstephens/teetime/internal/errors"
	"github.com/julianstephens/teetime/internal/form"
	"github.com/julianstephens/teetime/internal/keyring"
	"github.com/julianstephens/teetime/internal/logger"
	"github.com/julianstephens/teetime/internal/utils"
	"github.com/julianstephens/teetime/internal/validation"
)

// ErrNoIdentity is returned when a command needs an email and none was given.
var ErrNoIdentity = errors.New("no identity: pass --email or --link, or run 'teetime link validate <link> --remember'")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Context struct {
	Ctx    context.Context
	Client *api.Client
	Config config.Config
	Clock  utils.Clock
	Out    io.Writer

	// IsTerminal reports whether the interactive editor can take over stdout.
	IsTerminal func() bool
}

// Stdout returns the command output writer.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

func (c *Context) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock.Now()
}

func (c *Context) Interactive() bool {
	if c.IsTerminal != nil {
		return c.IsTerminal()
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewController builds a settings controller bound to the given identity.
func (c *Context) NewController(id form.Identity) *form.Controller {
	opts := []form.Option{}
	if c.Clock != nil {
		opts = append(opts, form.WithClock(c.Clock))
	}
	return form.NewController(c.Client, id, opts...)
}

// IdentityFlags select whose settings a command acts on.
type IdentityFlags struct {
	Email    string `help:"Email address whose settings to use." short:"e"`
	Link     string `help:"One-time link (or its token) from the settings email." short:"l"`
	Remember bool   `help:"Remember the resolved email in the OS keyring."`
}

// ResolveIdentity picks the identity from --link, then --email, then the keyring.
func (c *Context) ResolveIdentity(f IdentityFlags) (form.Identity, error) {
	var id form.Identity
	switch {
	case strings.TrimSpace(f.Link) != "":
		email, err := c.Client.ValidateOneTimeLink(c.Context(), f.Link)
		if err != nil {
			return form.Identity{}, err
		}
		id = form.Identity{Email: email, ViaLink: true}
	case strings.TrimSpace(f.Email) != "":
		email, err := ValidateEmail(f.Email)
		if err != nil {
			return form.Identity{}, err
		}
		id = form.Identity{Email: email}
	default:
		email, err := keyring.GetEmail()
		if err != nil {
			if !errors.Is(err, keyring.ErrNotFound) {
				logger.Warn("Keyring lookup failed", "error", err)
			}
			return form.Identity{}, ErrNoIdentity
		}
		return form.Identity{Email: email}, nil
	}

	if f.Remember {
		if err := keyring.SetEmail(id.Email); err != nil {
			return form.Identity{}, err
		}
		fmt.Fprintf(c.Stdout(), "✓ Remembered %s\n", id.Email)
	}
	return id, nil
}

// ValidateEmail trims and checks the shape of an email address.
func ValidateEmail(s string) (string, error) {
	email := strings.TrimSpace(s)
	if !emailPattern.MatchString(email) {
		return "", apperrors.Ef(apperrors.KindValidationFailure, "cli.ValidateEmail", "%s (got %q)", constants.MsgInvalidEmail, s)
	}
	return email, nil
}

// ParseWeekdays parses a comma-separated list of weekdays into canonical names.
// Numbers are accepted too (0=Sunday, 6=Saturday).
func ParseWeekdays(s string) ([]string, error) {
	var days []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if day, ok := validation.CanonicalWeekday(part); ok {
			days = append(days, day)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, time.Weekday(num).String())
	}
	return days, nil
}

// ParseExtraDate turns a date argument into YYYY-MM-DD. ISO dates pass through
// unchanged; anything else ("next saturday", "July 4") goes through the
// natural language parser relative to now.
func ParseExtraDate(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", apperrors.Ef(apperrors.KindInvalidDateFormat, "cli.ParseExtraDate", "empty date")
	}
	if _, err := time.Parse(constants.DateFormat, input); err == nil {
		return input, nil
	}
	if iso := utils.NormalizeDate(input); iso != input {
		return iso, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return "", apperrors.Ef(apperrors.KindInvalidDateFormat, "cli.ParseExtraDate", "cannot understand date %q", input)
	}
	return result.Time.Format(constants.DateFormat), nil
}

// ParseTime accepts "8:00am" style or 24-hour "08:00" and returns 24-hour HH:MM.
func ParseTime(input string) (string, error) {
	input = strings.TrimSpace(input)
	if t, err := utils.Parse24Hour(input); err == nil {
		return t.String(), nil
	}
	return utils.To24Hour(input)
}

// ParseSeasonDate accepts M/D (this year) or YYYY-MM-DD.
func ParseSeasonDate(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(input)
	if _, err := time.Parse(constants.DateFormat, input); err == nil {
		return input, nil
	}
	return utils.FormatMDToDate(input, now.Year())
}
