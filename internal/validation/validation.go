package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/fitlog/internal/constants"
	"github.com/julianstephens/fitlog/internal/models"
)

// ErrInvalid is the sentinel every validation Error matches with errors.Is
var ErrInvalid = errors.New("invalid input")

// Field names used in validation errors
const (
	FieldName     = "name"
	FieldDuration = "duration"
	FieldDate     = "date"
)

// Error describes one rejected input field
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

func invalid(field, format string, args ...interface{}) error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Issue is a problem found in an already stored activity
type Issue struct {
	ActivityID  int64
	Description string
}

// Validator checks activity input at the UI boundary
type Validator struct {
	now func() time.Time
}

// New creates a Validator that uses the system clock
func New() *Validator {
	return &Validator{now: time.Now}
}

// NewWithClock creates a Validator with a fixed notion of "now"
func NewWithClock(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// Today returns the current date in YYYY-MM-DD form
func (v *Validator) Today() string {
	return v.now().Format(constants.DateFormat)
}

// ValidateName trims the name and rejects empty or overlong labels
func (v *Validator) ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid(FieldName, "activity name is required")
	}
	if len([]rune(name)) > constants.MaxActivityNameLen {
		return "", invalid(FieldName, "activity name cannot exceed %d characters", constants.MaxActivityNameLen)
	}
	return name, nil
}

// ParseDuration parses user-entered minutes and checks the range
func (v *Validator) ParseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, invalid(FieldDuration, "duration is required")
	}
	minutes, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalid(FieldDuration, "please enter a valid number")
	}
	if err := v.ValidateDuration(minutes); err != nil {
		return 0, err
	}
	return minutes, nil
}

// ValidateDuration enforces 0 < minutes <= 1440
func (v *Validator) ValidateDuration(minutes int) error {
	if minutes < constants.MinDurationMin {
		return invalid(FieldDuration, "duration must be greater than 0")
	}
	if minutes > constants.MaxDurationMin {
		return invalid(FieldDuration, "duration cannot exceed 24 hours (%d minutes)", constants.MaxDurationMin)
	}
	return nil
}

// ValidateDate requires a strict YYYY-MM-DD date that is not after today
func (v *Validator) ValidateDate(date string) error {
	if err := ValidateDateFormat(date); err != nil {
		return err
	}
	// Fixed-width dates compare chronologically as strings
	if date > v.Today() {
		return invalid(FieldDate, "date %s is in the future", date)
	}
	return nil
}

// ValidateDateFormat checks the layout only
func ValidateDateFormat(date string) error {
	parsed, err := time.Parse(constants.DateFormat, date)
	if err != nil || parsed.Format(constants.DateFormat) != date {
		return invalid(FieldDate, "invalid date %q, use YYYY-MM-DD", date)
	}
	return nil
}

// ValidateActivity checks every mutable field in form order and returns the
// first failure. On success the returned activity carries the trimmed name.
func (v *Validator) ValidateActivity(a models.Activity) (models.Activity, error) {
	name, err := v.ValidateName(a.Name)
	if err != nil {
		return a, err
	}
	if err := v.ValidateDuration(a.DurationMin); err != nil {
		return a, err
	}
	if err := v.ValidateDate(a.Date); err != nil {
		return a, err
	}
	a.Name = name
	return a, nil
}

// CheckStored reports stored rows that would not pass boundary validation.
// Future dates are not flagged since they may have been valid under another clock.
func (v *Validator) CheckStored(activities []models.Activity) []Issue {
	var issues []Issue
	for _, a := range activities {
		if strings.TrimSpace(a.Name) == "" {
			issues = append(issues, Issue{ActivityID: a.ID, Description: "empty activity name"})
		}
		if err := v.ValidateDuration(a.DurationMin); err != nil {
			issues = append(issues, Issue{ActivityID: a.ID, Description: fmt.Sprintf("duration %d out of range", a.DurationMin)})
		}
		if err := ValidateDateFormat(a.Date); err != nil {
			issues = append(issues, Issue{ActivityID: a.ID, Description: fmt.Sprintf("malformed date %q", a.Date)})
		}
	}
	return issues
}
