package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/teetime/internal/cli"
	"github.com/julianstephens/teetime/internal/keyring"
	"github.com/julianstephens/teetime/internal/logger"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false

	// Check 1: configuration
	if err := ctx.Config.Validate(); err != nil {
		fmt.Fprintf(out, "❌ Configuration: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Configuration: OK (%s)\n", ctx.Config.APIBaseURL)
	}

	// Check 2: backend reachable
	if err := checkBackendReachable(ctx); err != nil {
		fmt.Fprintf(out, "❌ Backend reachable: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Backend reachable: OK\n")
	}

	// Check 3: keyring (warning only)
	if err := checkIdentity(); err != nil {
		fmt.Fprintf(out, "⚠ Remembered identity: WARNING\n")
		fmt.Fprintf(out, "   %v\n", err)
	} else {
		fmt.Fprintf(out, "✓ Remembered identity: OK\n")
	}

	// Check 4: log directory writable (warning only)
	if err := checkLogDir(ctx.Config.ConfigDir); err != nil {
		fmt.Fprintf(out, "⚠ Log directory: WARNING\n")
		fmt.Fprintf(out, "   %v\n", err)
	} else {
		fmt.Fprintf(out, "✓ Log directory: OK (%s)\n", logger.LogFile(ctx.Config.ConfigDir))
	}

	// Check 5: Clock/timezone sanity
	if err := checkClockTimezone(ctx.Now()); err != nil {
		fmt.Fprintf(out, "❌ Clock/timezone: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Clock/timezone: OK\n")
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func checkBackendReachable(ctx *cli.Context) error {
	if ctx.Client == nil {
		return errors.New("API client is not configured")
	}
	if _, err := ctx.Client.RecentTimes(ctx.Context()); err != nil {
		return err
	}
	return nil
}

func checkIdentity() error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	if _, err := keyring.GetEmail(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no identity remembered; commands need --email or --link")
		}
		return err
	}
	return nil
}

func checkLogDir(configDir string) error {
	dir := filepath.Dir(logger.LogFile(configDir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func checkClockTimezone(now time.Time) error {
	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
