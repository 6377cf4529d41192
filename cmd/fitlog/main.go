package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/fitlog/internal/cli"
	"github.com/julianstephens/fitlog/internal/cli/activities"
	"github.com/julianstephens/fitlog/internal/cli/settings"
	"github.com/julianstephens/fitlog/internal/cli/system"
	"github.com/julianstephens/fitlog/internal/constants"
	"github.com/julianstephens/fitlog/internal/errors"
	"github.com/julianstephens/fitlog/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use FITLOG_DB_CONNECTION, .pgpass, or the OS keyring instead." type:"string" default:"~/.config/fitlog/fitlog.db" env:"FITLOG_CONFIG"`
	Debug   bool   `help:"Enable debug logging to stderr." env:"FITLOG_DEBUG"`

	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add      activities.AddCmd    `cmd:"" help:"Log a new activity."`
	List     activities.ListCmd   `cmd:"" help:"List logged activities, newest first."`
	Show     activities.ShowCmd   `cmd:"" help:"Show a single activity."`
	Edit     activities.EditCmd   `cmd:"" help:"Edit an existing activity."`
	Delete   activities.DeleteCmd `cmd:"" help:"Delete an activity."`
	Clear    activities.ClearCmd  `cmd:"" help:"Delete all activities."`
	Stats    activities.StatsCmd  `cmd:"" help:"Show total activities and duration."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`

	Init     system.InitCmd    `cmd:"" help:"Initialize fitlog storage."`
	Migrate  system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Reset    system.ResetCmd   `cmd:"" help:"Drop all data and re-create the schema."`
	Doctor   system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	DebugCmd system.DebugCmd   `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Keyring  struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check whether the OS keyring is available."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
}

// These commands open (or deliberately do not open) the store themselves.
var skipLoad = map[string]bool{
	"init":    true,
	"migrate": true,
	"reset":   true,
	"doctor":  true,
	"keyring": true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Fitness activity logger"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: cli.ConfigDir(CLI.Config)}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	store, err := cli.NewGateway(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	appCtx := cli.NewContext(store)

	command := strings.Fields(ctx.Command())[0]
	logger.Debug("Running command", "command", ctx.Command(), "storage", store.GetConfigPath())
	if !skipLoad[command] {
		if err := store.Load(); err != nil {
			store.Close()
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
