package activities

import (
	"fmt"

	"github.com/julianstephens/fitlog/internal/cli"
	"github.com/julianstephens/fitlog/internal/models"
)

type EditCmd struct {
	ID       int64   `arg:"" help:"Activity ID."`
	Name     *string `short:"n" help:"New activity name."`
	Duration *string `short:"m" help:"New duration in minutes (1-1440)."`
	Date     *string `short:"d" help:"New date (YYYY-MM-DD or 'today')."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	activity, err := lookup(ctx, c.ID)
	if err != nil {
		return err
	}

	if c.Name == nil && c.Duration == nil && c.Date == nil {
		ctx.Println("No changes specified. Use --name, --duration or --date.")
		return nil
	}

	if c.Name != nil {
		activity.Name = *c.Name
	}
	if c.Duration != nil {
		minutes, err := ctx.Validator.ParseDuration(*c.Duration)
		if err != nil {
			return err
		}
		activity.DurationMin = minutes
	}
	if c.Date != nil {
		activity.Date = resolveDate(ctx, *c.Date)
	}

	activity, err = ctx.Validator.ValidateActivity(activity)
	if err != nil {
		return err
	}

	n, err := ctx.Repo.Update(activity)
	if err != nil {
		return err
	}
	// Deleted between lookup and update.
	if n == 0 {
		return fmt.Errorf("activity %d: %w", c.ID, models.ErrNotFound)
	}

	ctx.Printf("Updated activity #%d: %s, %s on %s\n", activity.ID, activity.Name, models.FormatMinutes(activity.DurationMin), activity.Date)
	return nil
}
