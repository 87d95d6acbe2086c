package settings

import (
	"errors"
	"fmt"

	"github.com/julianstephens/teetime/internal/cli"
	"github.com/julianstephens/teetime/internal/logger"
	"github.com/julianstephens/teetime/internal/tui"
)

// ErrNotInteractive is returned when the editor is started without a terminal.
var ErrNotInteractive = errors.New("the settings editor needs an interactive terminal; use 'teetime config set' instead")

type ConfigEditCmd struct {
	cli.IdentityFlags `embed:""`
}

func (c *ConfigEditCmd) Run(ctx *cli.Context) error {
	if !ctx.Interactive() {
		return ErrNotInteractive
	}
	id, err := ctx.ResolveIdentity(c.IdentityFlags)
	if err != nil {
		return err
	}

	controller := ctx.NewController(id)
	defer controller.Close()

	logger.Debug("Starting settings editor", "email", id.Email, "via_link", id.ViaLink)
	return tui.Run(ctx.Context(), controller)
}

type PauseCmd struct{}

func (c *PauseCmd) Run(ctx *cli.Context) error {
	if err := ctx.Client.Pause(ctx.Context()); err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stdout(), "✓ Notifications paused.")
	return nil
}

type ResumeCmd struct{}

func (c *ResumeCmd) Run(ctx *cli.Context) error {
	if err := ctx.Client.Resume(ctx.Context()); err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stdout(), "✓ Notifications resumed.")
	return nil
}
