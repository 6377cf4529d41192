package constants

const (
	// General Settings
	SettingNotificationsEnabled = "notifications_enabled"

	// Default Settings Values
	DefaultNotificationsEnabled = false
)
