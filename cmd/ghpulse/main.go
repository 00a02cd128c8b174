package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/ghpulse/internal/activity"
	"github.com/julianstephens/ghpulse/internal/cli"
	"github.com/julianstephens/ghpulse/internal/config"
	"github.com/julianstephens/ghpulse/internal/constants"
	"github.com/julianstephens/ghpulse/internal/errors"
	"github.com/julianstephens/ghpulse/internal/github"
	"github.com/julianstephens/ghpulse/internal/logger"
	"github.com/julianstephens/ghpulse/internal/widget"
)

var CLI struct {
	Version   kong.VersionFlag
	Debug     bool          `help:"Enable debug logging." env:"GHPULSE_DEBUG"`
	APIURL    string        `help:"GitHub REST API base URL." name:"api-url" default:"${api_url}" env:"GHPULSE_API_URL"`
	Timeout   time.Duration `help:"Profile request timeout." default:"${timeout}" env:"GHPULSE_TIMEOUT"`
	DemoUser  string        `help:"Username looked up when the TUI starts." default:"${demo_user}" env:"GHPULSE_DEMO_USER"`
	ConfigDir string        `help:"Directory for logs." type:"path" default:"${config_dir}" env:"GHPULSE_CONFIG_DIR"`

	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive widget." default:"withargs"`
	Show   cli.ShowCmd   `cmd:"" help:"Print a user's profile, calendar and stats."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run configuration and connectivity checks."`
}

func main() {
	config.LoadEnv()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("GitHub profile and activity calendar widget"),
		kong.UsageOnError(),
		kong.Vars{
			"version":    constants.Version,
			"api_url":    constants.DefaultAPIURL,
			"timeout":    constants.DefaultTimeout.String(),
			"demo_user":  constants.DefaultDemoUser,
			"config_dir": constants.DefaultConfigDir,
		},
	)

	cfg := config.Config{
		APIURL:    CLI.APIURL,
		Timeout:   CLI.Timeout,
		DemoUser:  CLI.DemoUser,
		ConfigDir: CLI.ConfigDir,
		Debug:     CLI.Debug,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(err))
		os.Exit(1)
	}

	// The alternate screen owns the terminal while the TUI runs.
	interactive := strings.HasPrefix(ctx.Command(), "tui")
	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.ConfigDir, Stderr: !interactive}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	client := github.NewClient(cfg.APIURL, cfg.Timeout)
	appCtx := &cli.Context{
		Service: widget.New(client, activity.NewRandomProvider(nil)),
		Client:  client,
		Config:  cfg,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		errors.Fatal(err)
	}
}
