package models

import "encoding/json"

// Stats summarises the activity log for the settings screen
type Stats struct {
	TotalActivities  int `json:"total_activities"`
	TotalDurationMin int `json:"total_duration_min"`
}

// Hours returns the total duration in whole hours
func (s Stats) Hours() int {
	return s.TotalDurationMin / 60
}

// MarshalJSON adds the derived total_hours field.
func (s Stats) MarshalJSON() ([]byte, error) {
	type stats Stats
	return json.Marshal(struct {
		stats
		TotalHours int `json:"total_hours"`
	}{stats(s), s.Hours()})
}
