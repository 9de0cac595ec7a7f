package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/kirastone/trackly/internal/cli"
	"github.com/kirastone/trackly/internal/cli/backups"
	"github.com/kirastone/trackly/internal/cli/categories"
	"github.com/kirastone/trackly/internal/cli/records"
	"github.com/kirastone/trackly/internal/cli/system"
	"github.com/kirastone/trackly/internal/cli/trackers"
	"github.com/kirastone/trackly/internal/constants"
	"github.com/kirastone/trackly/internal/logger"
	"github.com/kirastone/trackly/internal/storage"
	"github.com/kirastone/trackly/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json extension selects the JSON backend." type:"path" default:"~/.config/trackly/trackly.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize trackly storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Day     cli.DayCmd        `cmd:"" help:"Show trackers for a day." default:"1"`
	Stats   cli.StatsCmd      `cmd:"" help:"Show completion statistics."`
	Tracker struct {
		Add    trackers.AddCmd    `cmd:"" help:"Add a new tracker."`
		Edit   trackers.EditCmd   `cmd:"" help:"Edit an existing tracker."`
		List   trackers.ListCmd   `cmd:"" help:"List all trackers."`
		Pin    trackers.PinCmd    `cmd:"" help:"Toggle a tracker's pinned state."`
		Delete trackers.DeleteCmd `cmd:"" help:"Delete a tracker and its records."`
	} `cmd:"" help:"Manage trackers."`
	Category struct {
		Add  categories.AddCmd  `cmd:"" help:"Add a category."`
		List categories.ListCmd `cmd:"" help:"List categories."`
	} `cmd:"" help:"Manage categories."`
	Complete   records.CompleteCmd   `cmd:"" help:"Mark a tracker complete for a day."`
	Uncomplete records.UncompleteCmd `cmd:"" help:"Unmark a tracker for a day."`
	Backup     struct {
		Create  backups.CreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.ListCmd    `cmd:"" help:"List available backups."`
		Restore backups.RestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with schedules, categories and streaks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// Pick the backend from the config path extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = sqlite.NewStore(CLI.Config)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("command failed", "command", ctx.Command(), "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
