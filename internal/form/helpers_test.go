package form

import (
	"context"
	"sync"
	"time"

	"github.com/julianstephens/teetime/internal/models"
)

var testNow = time.Date(2026, 2, 13, 10, 0, 0, 0, time.UTC)

// manualClock is a settable clock.
type manualClock struct {
	mu sync.Mutex
	t  time.Time
}

func newManualClock(t time.Time) *manualClock {
	return &manualClock{t: t}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// gatedBackend blocks each call until release is closed.
type gatedBackend struct {
	cfg     models.NotificationConfiguration
	started chan struct{}
	release chan struct{}

	mu      sync.Mutex
	updates int
}

func newGatedBackend(cfg models.NotificationConfiguration) *gatedBackend {
	return &gatedBackend{
		cfg:     cfg,
		started: make(chan struct{}, 8),
		release: make(chan struct{}),
	}
}

func (g *gatedBackend) GetUserConfig(ctx context.Context, _ string) (models.NotificationConfiguration, error) {
	g.started <- struct{}{}
	select {
	case <-g.release:
	case <-ctx.Done():
		return models.NotificationConfiguration{}, ctx.Err()
	}
	return g.cfg.Clone(), nil
}

func (g *gatedBackend) UpdateUserConfig(ctx context.Context, _ string, _ models.NotificationConfiguration) error {
	g.started <- struct{}{}
	select {
	case <-g.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	g.mu.Lock()
	g.updates++
	g.mu.Unlock()
	return nil
}

func serverConfig() models.NotificationConfiguration {
	return models.NotificationConfiguration{
		PlayableDaysOfWeek:         []string{"Sunday", "saturday"},
		EarliestPlayableTime:       "1:30pm",
		ExtraPlayableDays:          []string{"2026-07-03"},
		IncludeHolidays:            true,
		MinimumMinutesBeforeSunset: 0,
		MinPlayers:                 2,
		NotificationsEnabled:       true,
		StartDate:                  "4/1",
		EndDate:                    "10/31",
	}
}
