package system

import (
	"github.com/julianstephens/fitlog/internal/cli"
)

// ResetCmd drops every table and recreates an empty schema.
type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	ok, err := ctx.Ask("Drop all fitlog tables and start over? All activities and settings will be lost.", c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Cancelled.")
		return nil
	}

	if err := ctx.Store.ResetSchema(); err != nil {
		return err
	}
	ctx.Printf("Database reset at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
