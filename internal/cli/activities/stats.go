package activities

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/fitlog/internal/cli"
	"github.com/julianstephens/fitlog/internal/constants"
)

type StatsCmd struct {
	JSON bool `help:"Print statistics as JSON."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	stats, err := ctx.Repo.Stats()
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(ctx, stats)
	}

	ctx.Println("Statistics:")
	ctx.Printf("  Total activities: %s\n", humanize.Comma(int64(stats.TotalActivities)))
	ctx.Printf("  Total duration:   %s minutes (%s hours)\n",
		humanize.Comma(int64(stats.TotalDurationMin)), humanize.Comma(int64(stats.Hours())))

	if stats.TotalActivities == 0 {
		return nil
	}

	all, err := ctx.Repo.GetAll()
	if err != nil {
		return err
	}
	// the table can be cleared between the two reads
	if len(all) == 0 {
		return nil
	}
	latest := all[0]
	if day, err := time.ParseInLocation(constants.DateFormat, latest.Date, time.Local); err == nil {
		ctx.Printf("  Last activity:    %s on %s (%s)\n", latest.Name, latest.Date, relativeDay(day, time.Now()))
	}
	return nil
}

func relativeDay(day, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch days := int(math.Round(today.Sub(day).Hours() / 24)); {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	default:
		return humanize.RelTime(day, today, "ago", "from now")
	}
}
