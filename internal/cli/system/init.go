package system

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/julianstephens/fitlog/internal/cli"
	"github.com/julianstephens/fitlog/internal/storage"
	"github.com/julianstephens/fitlog/internal/storage/postgres"
	"github.com/julianstephens/fitlog/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Drop all existing data and re-create the schema before initialization."`
	Source string `help:"Source database path or connection string to copy activities and settings from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Source != "" && sameLocation(c.Source, ctx.Store.GetConfigPath()) {
		return fmt.Errorf("source and destination are the same: %s", c.Source)
	}

	if c.Force {
		if err := ctx.Store.ResetSchema(); err != nil {
			return fmt.Errorf("failed to reset existing database: %w", err)
		}
		ctx.Printf("Reset existing database at: %s\n", ctx.Store.GetConfigPath())
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized fitlog storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Copying data from: %s\n", c.Source)
		if err := c.copyData(ctx); err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		ctx.Println("Copy completed successfully!")
	}
	return nil
}

func (c *InitCmd) copyData(ctx *cli.Context) error {
	var source storage.Gateway
	if postgres.IsConnString(c.Source) {
		if valid, err := postgres.ValidateConnString(c.Source); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return err
		}
		source = postgres.New(c.Source)
	} else {
		source = sqlite.NewStore(c.Source)
	}

	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer source.Close()

	ctx.Println("  Copying settings...")
	settings, err := source.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	ctx.Println("  Copying activities...")
	activities, err := storage.NewRepository(source).GetAll()
	if err != nil {
		return fmt.Errorf("failed to get activities from source: %w", err)
	}
	// Insert oldest first so new ids keep the source order.
	sort.Slice(activities, func(i, j int) bool { return activities[i].ID < activities[j].ID })
	for _, a := range activities {
		if _, err := ctx.Repo.Add(a); err != nil {
			return fmt.Errorf("failed to add activity %d: %w", a.ID, err)
		}
	}
	ctx.Printf("    Copied %d activities\n", len(activities))
	return nil
}

func sameLocation(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
