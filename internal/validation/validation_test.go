package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/fitlog/internal/models"
)

func fixedValidator() *Validator {
	return NewWithClock(func() time.Time {
		return time.Date(2024, 6, 15, 18, 30, 0, 0, time.Local)
	})
}

func TestValidateDuration_Boundaries(t *testing.T) {
	v := fixedValidator()

	tests := []struct {
		minutes int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{30, false},
		{1440, false},
		{1441, true},
		{-5, true},
	}

	for _, tt := range tests {
		err := v.ValidateDuration(tt.minutes)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDuration(%d) error = %v, wantErr %v", tt.minutes, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalid) {
			t.Errorf("ValidateDuration(%d) error should match ErrInvalid", tt.minutes)
		}
	}
}

func TestParseDuration(t *testing.T) {
	v := fixedValidator()

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"valid", "45", 45, false},
		{"surrounding whitespace", " 60 ", 60, false},
		{"empty", "", 0, true},
		{"not a number", "thirty", 0, true},
		{"decimal", "12.5", 0, true},
		{"zero", "0", 0, true},
		{"too long", "1441", 0, true},
		{"upper bound", "1440", 1440, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ParseDuration(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDuration(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	v := fixedValidator()

	name, err := v.ValidateName("  Running  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Running" {
		t.Errorf("expected trimmed name, got %q", name)
	}

	if _, err := v.ValidateName("   "); err == nil {
		t.Error("expected error for blank name")
	}

	var vErr *Error
	_, err = v.ValidateName("")
	if !errors.As(err, &vErr) || vErr.Field != FieldName {
		t.Errorf("expected name field error, got %v", err)
	}
}

func TestValidateDate(t *testing.T) {
	v := fixedValidator()

	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"today", "2024-06-15", false},
		{"past", "2023-12-31", false},
		{"tomorrow", "2024-06-16", true},
		{"wrong layout", "15/06/2024", true},
		{"not zero padded", "2024-6-1", true},
		{"impossible day", "2024-02-30", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDate(tt.date)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDate(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
			}
		})
	}
}

func TestValidateActivity_FirstFailureWins(t *testing.T) {
	v := fixedValidator()

	_, err := v.ValidateActivity(models.Activity{Name: "", DurationMin: 0, Date: "bad"})
	var vErr *Error
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if vErr.Field != FieldName {
		t.Errorf("expected name to be reported first, got %s", vErr.Field)
	}

	got, err := v.ValidateActivity(models.Activity{Name: " Yoga ", DurationMin: 20, Date: "2024-06-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Yoga" {
		t.Errorf("expected trimmed name, got %q", got.Name)
	}
}

func TestCheckStored(t *testing.T) {
	v := fixedValidator()

	activities := []models.Activity{
		{ID: 1, Name: "Running", DurationMin: 30, Date: "2024-06-01"},
		{ID: 2, Name: "", DurationMin: 30, Date: "2024-06-01"},
		{ID: 3, Name: "Swim", DurationMin: 2000, Date: "2024/06/01"},
		{ID: 4, Name: "Hike", DurationMin: 120, Date: "2030-01-01"},
	}

	issues := v.CheckStored(activities)
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %+v", len(issues), issues)
	}
	for _, issue := range issues {
		if issue.ActivityID == 1 || issue.ActivityID == 4 {
			t.Errorf("unexpected issue for activity %d: %s", issue.ActivityID, issue.Description)
		}
	}
}
