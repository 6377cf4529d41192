package models

// Settings represents application-wide settings
type Settings struct {
	NotificationsEnabled bool `json:"notifications_enabled"` // persisted toggle, nothing is scheduled from it
}
