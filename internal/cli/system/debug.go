package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/fitlog/internal/cli"
	"github.com/julianstephens/fitlog/internal/models"
)

type DebugCmd struct {
	DBPath       *DebugDBPathCmd       `cmd:"" help:"Show database path and driver."`
	DumpActivity *DebugDumpActivityCmd `cmd:"" help:"Dump an activity as JSON."`
	DumpSettings *DebugDumpSettingsCmd `cmd:"" help:"Dump settings as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return dumpJSON(ctx, map[string]string{
		"path":   ctx.Store.GetConfigPath(),
		"driver": ctx.Store.Driver(),
	})
}

type DebugDumpActivityCmd struct {
	ID int64 `arg:"" help:"Activity ID."`
}

func (cmd *DebugDumpActivityCmd) Run(ctx *cli.Context) error {
	activity, found, err := ctx.Repo.GetByID(cmd.ID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("activity %d: %w", cmd.ID, models.ErrNotFound)
	}
	return dumpJSON(ctx, activity)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	current, latest, err := ctx.Store.SchemaVersion()
	if err != nil {
		return err
	}
	return dumpJSON(ctx, struct {
		models.Settings
		SchemaVersion       int `json:"schema_version"`
		LatestSchemaVersion int `json:"latest_schema_version"`
	}{settings, current, latest})
}

func dumpJSON(ctx *cli.Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(jsonBytes))
	return nil
}
