// Package clitest wires a command Context to an in-memory backend.
package clitest

import (
	"bytes"
	"context"
	"testing"
	"time"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/teetime/internal/api"
	"github.com/julianstephens/teetime/internal/api/apitest"
	"github.com/julianstephens/teetime/internal/cli"
	"github.com/julianstephens/teetime/internal/config"
	"github.com/julianstephens/teetime/internal/utils"
)

// Email is a user known to the backend returned by Setup.
const Email = "golfer@example.com"

// Now is the fixed "today" used by Setup.
var Now = time.Date(2026, time.June, 15, 9, 0, 0, 0, time.Local)

// Setup returns a Context talking to a fresh fake backend, with the OS
// keyring replaced by an in-memory one and output captured in the buffer.
func Setup(t *testing.T) (*cli.Context, *apitest.Backend, *bytes.Buffer) {
	t.Helper()
	gokeyring.MockInit()

	b := apitest.NewBackend()
	t.Cleanup(b.Close)

	cfg := config.Default()
	cfg.APIBaseURL = b.URL()
	cfg.ConfigDir = t.TempDir()

	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Ctx:        context.Background(),
		Client:     api.NewClient(b.URL(), api.WithTimeout(5*time.Second)),
		Config:     cfg,
		Clock:      utils.FixedClock(Now),
		Out:        out,
		IsTerminal: func() bool { return false },
	}
	return ctx, b, out
}
