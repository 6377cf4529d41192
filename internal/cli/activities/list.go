package activities

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/julianstephens/fitlog/internal/cli"
	"github.com/julianstephens/fitlog/internal/models"
	"github.com/julianstephens/fitlog/internal/validation"
)

type ListCmd struct {
	Date string `short:"d" help:"Only show activities on this date (YYYY-MM-DD or 'today')."`
	JSON bool   `help:"Print activities as JSON."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	var (
		activities []models.Activity
		err        error
	)
	if c.Date != "" {
		date := resolveDate(ctx, c.Date)
		if err := validation.ValidateDateFormat(date); err != nil {
			return err
		}
		activities, err = ctx.Repo.GetByDate(date)
	} else {
		activities, err = ctx.Repo.GetAll()
	}
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(ctx, activities)
	}

	if len(activities) == 0 {
		ctx.Println("No activities yet. Add one with 'fitlog add NAME MINUTES'.")
		return nil
	}

	renderTable(ctx, activities)
	return nil
}

func renderTable(ctx *cli.Context, activities []models.Activity) {
	tw := table.NewWriter()
	tw.SetOutputMirror(ctx.Writer())
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"ID", "Date", "Activity", "Duration"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	total := 0
	for _, a := range activities {
		tw.AppendRow(table.Row{a.ID, a.Date, a.Name, models.FormatMinutes(a.DurationMin)})
		total += a.DurationMin
	}
	tw.AppendFooter(table.Row{"", "", "Total", models.FormatMinutes(total)})
	tw.Render()
}

func printJSON(ctx *cli.Context, v any) error {
	enc := json.NewEncoder(ctx.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
