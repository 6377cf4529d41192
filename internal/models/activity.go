package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested activity does not exist
	ErrNotFound = errors.New("activity not found")
	// ErrStorage wraps failures reported by the underlying store
	ErrStorage = errors.New("storage failure")
)

// Activity is one logged fitness activity
type Activity struct {
	ID          int64  `json:"id"`           // assigned by the store, 0 until persisted
	Name        string `json:"name"`         // activity label, e.g. "Running"
	DurationMin int    `json:"duration_min"` // duration in minutes, 1..1440
	Date        string `json:"date"`         // YYYY-MM-DD
}

// NewActivity returns an activity that has not been persisted yet
func NewActivity(name string, durationMin int, date string) Activity {
	return Activity{
		Name:        name,
		DurationMin: durationMin,
		Date:        date,
	}
}

// IsPersisted reports whether the store has assigned an ID
func (a Activity) IsPersisted() bool {
	return a.ID > 0
}

func (a Activity) String() string {
	return fmt.Sprintf("Activity{id=%d, name=%q, duration=%d minutes, date=%s}", a.ID, a.Name, a.DurationMin, a.Date)
}

// FormatMinutes renders a duration as "45 min", "2h" or "1h 05m"
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}

// StorageError wraps err so callers can test for it with errors.Is(err, ErrStorage)
func StorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
