package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/teetime/internal/api"
	"github.com/julianstephens/teetime/internal/cli"
	"github.com/julianstephens/teetime/internal/cli/account"
	"github.com/julianstephens/teetime/internal/cli/settings"
	"github.com/julianstephens/teetime/internal/cli/system"
	"github.com/julianstephens/teetime/internal/cli/times"
	"github.com/julianstephens/teetime/internal/config"
	"github.com/julianstephens/teetime/internal/constants"
	apperrors "github.com/julianstephens/teetime/internal/errors"
	"github.com/julianstephens/teetime/internal/logger"
	"github.com/julianstephens/teetime/internal/utils"
)

var CLI struct {
	Version   kong.VersionFlag
	APIURL    string        `name:"api-url" help:"Base URL of the tee time backend." env:"TEETIME_API_URL" default:"${api_url}"`
	ConfigDir string        `help:"Directory for logs and the .env file." env:"TEETIME_CONFIG_DIR" default:"${config_dir}" type:"path"`
	Debug     bool          `help:"Write debug logs to stderr." env:"TEETIME_DEBUG"`
	Timeout   time.Duration `help:"Request timeout." env:"TEETIME_TIMEOUT" default:"${timeout}"`

	Edit     settings.ConfigEditCmd `cmd:"" help:"Edit your notification settings interactively." default:"withargs"`
	Times    times.TimesCmd         `cmd:"" help:"Show recently found tee times."`
	Register account.RegisterCmd    `cmd:"" help:"Sign up for tee time alerts."`
	Link     struct {
		Request  account.LinkRequestCmd  `cmd:"" help:"Email yourself a one-time settings link."`
		Validate account.LinkValidateCmd `cmd:"" help:"Check a one-time link and show whose settings it opens."`
	} `cmd:"" help:"Manage one-time settings links."`
	Config struct {
		Show settings.ConfigShowCmd `cmd:"" help:"Show your notification settings." default:"withargs"`
		Set  settings.ConfigSetCmd  `cmd:"" help:"Update your notification settings."`
	} `cmd:"" help:"View or change notification settings."`
	Pause    settings.PauseCmd  `cmd:"" help:"Pause notifications."`
	Resume   settings.ResumeCmd `cmd:"" help:"Resume notifications."`
	Identity struct {
		Show     system.IdentityShowCmd     `cmd:"" help:"Show the remembered email." default:"1"`
		Remember system.IdentityRememberCmd `cmd:"" help:"Remember an email in the OS keyring."`
		Forget   system.IdentityForgetCmd   `cmd:"" help:"Forget the remembered email."`
		Status   system.IdentityStatusCmd   `cmd:"" help:"Check if the OS keyring is available."`
	} `cmd:"" help:"Manage the identity remembered in the OS keyring."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
}

func main() {
	// .env values must be in the environment before flags read it.
	if _, err := config.Bootstrap(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", apperrors.Format(err))
		os.Exit(1)
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Bethpage Black tee time alerts: browse recent tee times and manage your notification settings."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":    constants.Version,
			"api_url":    constants.DefaultAPIBaseURL,
			"config_dir": config.DefaultConfigDir(),
			"timeout":    constants.DefaultRequestTimeout.String(),
		},
	)

	cfg := config.Config{
		APIBaseURL:     CLI.APIURL,
		ConfigDir:      CLI.ConfigDir,
		Debug:          CLI.Debug,
		RequestTimeout: CLI.Timeout,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", apperrors.Format(err))
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.ConfigDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	logger.Debug("Starting", "version", constants.Version, "command", ctx.Command(), "api", cfg.APIBaseURL)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCtx := &cli.Context{
		Ctx:    runCtx,
		Client: api.NewClient(cfg.APIBaseURL, api.WithTimeout(cfg.RequestTimeout)),
		Config: cfg,
		Clock:  utils.SystemClock{},
		Out:    os.Stdout,
	}

	err := ctx.Run(appCtx)
	stop()
	apperrors.Fatal(err)
}
