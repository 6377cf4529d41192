package tui

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/fitlog/internal/models"
	"github.com/julianstephens/fitlog/internal/validation"
)

// ActivityFormModel holds the raw text of the add/edit form.
type ActivityFormModel struct {
	Name     string
	Duration string
	Date     string
}

type ConfirmationFormModel struct {
	Confirmed bool
}

func formFromActivity(a models.Activity) ActivityFormModel {
	return ActivityFormModel{
		Name:     a.Name,
		Duration: strconv.Itoa(a.DurationMin),
		Date:     a.Date,
	}
}

// toActivity parses and validates the form in field order.
func (fm ActivityFormModel) toActivity(v *validation.Validator, id int64) (models.Activity, error) {
	name, err := v.ValidateName(fm.Name)
	if err != nil {
		return models.Activity{}, err
	}
	minutes, err := v.ParseDuration(fm.Duration)
	if err != nil {
		return models.Activity{}, err
	}
	if err := v.ValidateDate(fm.Date); err != nil {
		return models.Activity{}, err
	}
	a := models.NewActivity(name, minutes, fm.Date)
	a.ID = id
	return a, nil
}

func NewActivityForm(fm *ActivityFormModel, v *validation.Validator) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity").
				Placeholder("Running").
				CharLimit(120).
				Value(&fm.Name).
				Validate(func(s string) error {
					_, err := v.ValidateName(s)
					return err
				}),
			huh.NewInput().
				Title("Duration (min)").
				Value(&fm.Duration).
				Validate(func(s string) error {
					_, err := v.ParseDuration(s)
					return err
				}),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, defaults to today").
				Value(&fm.Date).
				Validate(v.ValidateDate),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(true)
}

func NewConfirmationForm(title string, fm *ConfirmationFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}
