package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/null993/holidown/internal/cli"
	"github.com/null993/holidown/internal/constants"
	"github.com/null993/holidown/internal/errors"
	"github.com/null993/holidown/internal/feed"
	"github.com/null993/holidown/internal/logger"
	"github.com/null993/holidown/internal/source"
	"github.com/null993/holidown/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"string" default:"~/.config/holidown/holidown.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize holidown storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Next     cli.NextCmd     `cmd:"" help:"Print the countdown to the next holiday."`
	List     cli.ListCmd     `cmd:"" help:"Print the upcoming holiday table."`
	Settings cli.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Holiday countdown for your terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	store := storage.NewSQLiteStore(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(store.GetConfigPath()),
	}); err != nil {
		errors.Fatal(err)
	}

	fetcher := feed.NewFetcher()
	appCtx := &cli.Context{
		Store:  store,
		Source: source.New(store, fetcher.Fetch),
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
