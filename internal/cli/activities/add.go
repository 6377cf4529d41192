package activities

import (
	"github.com/julianstephens/fitlog/internal/cli"
	"github.com/julianstephens/fitlog/internal/logger"
	"github.com/julianstephens/fitlog/internal/models"
)

type AddCmd struct {
	Name     string `arg:"" help:"Activity name, e.g. Running."`
	Duration string `arg:"" help:"Duration in minutes (1-1440)."`
	Date     string `short:"d" help:"Date of the activity (YYYY-MM-DD or 'today'). Defaults to today."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	v := ctx.Validator

	name, err := v.ValidateName(c.Name)
	if err != nil {
		return err
	}
	minutes, err := v.ParseDuration(c.Duration)
	if err != nil {
		return err
	}
	date := resolveDate(ctx, c.Date)
	if err := v.ValidateDate(date); err != nil {
		return err
	}

	activity := models.NewActivity(name, minutes, date)
	id, err := ctx.Repo.Add(activity)
	if err != nil {
		logger.Error("Failed to add activity", "error", err)
		return err
	}

	ctx.Printf("Added activity #%d: %s, %s on %s\n", id, name, models.FormatMinutes(minutes), date)
	return nil
}
