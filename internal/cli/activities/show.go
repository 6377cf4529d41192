package activities

import (
	"fmt"

	"github.com/julianstephens/fitlog/internal/cli"
	"github.com/julianstephens/fitlog/internal/models"
)

type ShowCmd struct {
	ID   int64 `arg:"" help:"Activity ID."`
	JSON bool  `help:"Print the activity as JSON."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	activity, err := lookup(ctx, c.ID)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(ctx, activity)
	}

	ctx.Printf("Activity #%d\n", activity.ID)
	ctx.Printf("  Name:     %s\n", activity.Name)
	ctx.Printf("  Duration: %s\n", models.FormatMinutes(activity.DurationMin))
	ctx.Printf("  Date:     %s\n", activity.Date)
	return nil
}

// lookup turns the repository's found flag into ErrNotFound.
func lookup(ctx *cli.Context, id int64) (models.Activity, error) {
	activity, found, err := ctx.Repo.GetByID(id)
	if err != nil {
		return models.Activity{}, err
	}
	if !found {
		return models.Activity{}, fmt.Errorf("activity %d: %w", id, models.ErrNotFound)
	}
	return activity, nil
}
