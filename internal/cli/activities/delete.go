package activities

import (
	"fmt"

	"github.com/julianstephens/fitlog/internal/cli"
	"github.com/julianstephens/fitlog/internal/models"
)

type DeleteCmd struct {
	ID  int64 `arg:"" help:"Activity ID to delete."`
	Yes bool  `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	activity, err := lookup(ctx, c.ID)
	if err != nil {
		return err
	}

	ok, err := ctx.Ask(fmt.Sprintf("Delete %s (%s on %s)?", activity.Name, models.FormatMinutes(activity.DurationMin), activity.Date), c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Cancelled.")
		return nil
	}

	n, err := ctx.Repo.Delete(c.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("activity %d: %w", c.ID, models.ErrNotFound)
	}

	ctx.Printf("Deleted activity #%d: %s\n", activity.ID, activity.Name)
	return nil
}

// ClearCmd removes every activity.
type ClearCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	count, err := ctx.Repo.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		ctx.Println("No activities to delete.")
		return nil
	}

	ok, err := ctx.Ask(fmt.Sprintf("Delete all %d activities? This cannot be undone.", count), c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Cancelled.")
		return nil
	}

	n, err := ctx.Repo.DeleteAll()
	if err != nil {
		return err
	}
	ctx.Printf("All data cleared (%d activities deleted).\n", n)
	return nil
}
