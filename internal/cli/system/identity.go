package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/teetime/internal/cli"
	"github.com/julianstephens/teetime/internal/keyring"
)

// IdentityShowCmd prints the email remembered in the OS keyring
type IdentityShowCmd struct{}

func (cmd *IdentityShowCmd) Run(ctx *cli.Context) error {
	email, err := keyring.GetEmail()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Fprintln(ctx.Stdout(), "ℹ No identity remembered.")
			fmt.Fprintln(ctx.Stdout(), "  Use 'teetime link validate <link> --remember' to store one")
			return nil
		}
		return fmt.Errorf("failed to read identity from keyring: %w", err)
	}
	fmt.Fprintf(ctx.Stdout(), "Remembered identity: %s\n", email)
	return nil
}

// IdentityRememberCmd stores an email in the OS keyring without a link
type IdentityRememberCmd struct {
	Email string `arg:"" help:"Email address to remember."`
}

func (cmd *IdentityRememberCmd) Run(ctx *cli.Context) error {
	email, err := cli.ValidateEmail(cmd.Email)
	if err != nil {
		return err
	}
	if err := keyring.SetEmail(email); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout(), "✓ Remembered %s\n", email)
	return nil
}

// IdentityForgetCmd removes the remembered email from the OS keyring
type IdentityForgetCmd struct{}

func (cmd *IdentityForgetCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteEmail(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no identity remembered in keyring")
		}
		return err
	}
	fmt.Fprintln(ctx.Stdout(), "✓ Identity removed from OS keyring")
	return nil
}

// IdentityStatusCmd checks if the OS keyring is available
type IdentityStatusCmd struct{}

func (cmd *IdentityStatusCmd) Run(ctx *cli.Context) error {
	if keyring.IsAvailable() {
		fmt.Fprintln(ctx.Stdout(), "✓ OS keyring is available")
		return nil
	}
	fmt.Fprintln(ctx.Stdout(), "❌ OS keyring is not available")
	fmt.Fprintln(ctx.Stdout(), "  Pass --email or --link to each command instead")
	return nil
}
