package account

import (
	"fmt"

	"github.com/julianstephens/teetime/internal/cli"
	"github.com/julianstephens/teetime/internal/constants"
	"github.com/julianstephens/teetime/internal/keyring"
	"github.com/julianstephens/teetime/internal/logger"
)

type RegisterCmd struct {
	Email    string `arg:"" help:"Email address to send tee time alerts to."`
	Remember bool   `help:"Remember this email in the OS keyring."`
}

func (c *RegisterCmd) Run(ctx *cli.Context) error {
	email, err := cli.ValidateEmail(c.Email)
	if err != nil {
		return err
	}
	if _, err := ctx.Client.Register(ctx.Context(), email); err != nil {
		return err
	}
	logger.Info("Registered", "email", email)
	fmt.Fprintf(ctx.Stdout(), "✓ %s\n", constants.MsgRegistered)

	if c.Remember {
		if err := keyring.SetEmail(email); err != nil {
			return err
		}
		fmt.Fprintf(ctx.Stdout(), "✓ Remembered %s\n", email)
	}
	return nil
}

type LinkRequestCmd struct {
	Email string `arg:"" optional:"" help:"Email address to send the link to. Defaults to the remembered identity."`
}

func (c *LinkRequestCmd) Run(ctx *cli.Context) error {
	id, err := ctx.ResolveIdentity(cli.IdentityFlags{Email: c.Email})
	if err != nil {
		return err
	}
	if _, err := ctx.Client.CreateOneTimeLink(ctx.Context(), id.Email); err != nil {
		return err
	}
	logger.Info("One-time link requested", "email", id.Email)
	fmt.Fprintf(ctx.Stdout(), "✓ %s\n", constants.MsgLinkSent)
	return nil
}

type LinkValidateCmd struct {
	Link     string `arg:"" help:"One-time link (or its token) from the settings email."`
	Remember bool   `help:"Remember the resolved email in the OS keyring."`
}

func (c *LinkValidateCmd) Run(ctx *cli.Context) error {
	id, err := ctx.ResolveIdentity(cli.IdentityFlags{Link: c.Link, Remember: c.Remember})
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout(), "Link is valid for %s\n", id.Email)
	if !c.Remember {
		fmt.Fprintln(ctx.Stdout(), "ℹ Pass --remember to use this identity without a link next time.")
	}
	return nil
}
