package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestActivityIsPersisted(t *testing.T) {
	a := NewActivity("Running", 30, "2024-06-01")
	if a.IsPersisted() {
		t.Error("new activity should not be persisted")
	}
	a.ID = 3
	if !a.IsPersisted() {
		t.Error("activity with ID should be persisted")
	}
}

func TestStorageError(t *testing.T) {
	if StorageError("insert", nil) != nil {
		t.Error("StorageError(nil) should be nil")
	}

	cause := fmt.Errorf("disk I/O error")
	err := StorageError("insert activity", cause)
	if !errors.Is(err, ErrStorage) {
		t.Errorf("expected errors.Is(err, ErrStorage), got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be preserved, got %v", err)
	}
}

func TestStatsHours(t *testing.T) {
	tests := []struct {
		minutes int
		want    int
	}{
		{0, 0},
		{59, 0},
		{60, 1},
		{135, 2},
	}
	for _, tt := range tests {
		if got := (Stats{TotalDurationMin: tt.minutes}).Hours(); got != tt.want {
			t.Errorf("Stats{%d}.Hours() = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}

func TestStatsJSON(t *testing.T) {
	data, err := json.Marshal(Stats{TotalActivities: 3, TotalDurationMin: 155})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"total_activities":3,"total_duration_min":155,"total_hours":2}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := map[int]string{
		1:    "1 min",
		59:   "59 min",
		60:   "1h",
		95:   "1h 35m",
		1440: "24h",
	}
	for in, want := range tests {
		if got := FormatMinutes(in); got != want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", in, got, want)
		}
	}
}
