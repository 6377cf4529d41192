package activities

import (
	"strings"

	"github.com/julianstephens/fitlog/internal/cli"
)

// resolveDate maps '' and 'today' to the validator's current date.
func resolveDate(ctx *cli.Context, date string) string {
	date = strings.TrimSpace(date)
	if date == "" || strings.EqualFold(date, "today") {
		return ctx.Validator.Today()
	}
	return date
}
