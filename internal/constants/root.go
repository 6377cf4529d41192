package constants

import (
	tea "github.com/charmbracelet/bubbletea"
)

// SessionState represents the current state of the TUI application
type SessionState int

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Message string
	Action  func() tea.Cmd
}

const (
	AppName            = "fitlog"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/fitlog/fitlog.db"
	Version            = "v0.3.0"

	// ConnectionEnvVar holds a PostgreSQL connection string when --config is not a URL
	ConnectionEnvVar = "FITLOG_DB_CONNECTION"

	// Driver names as registered with database/sql
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// TableActivities keeps the name used by the on-device database so an
	// existing file can be adopted in place.
	TableActivities = "fitness_activities"

	// Duration bounds in minutes, inclusive upper bound (24 hours)
	MinDurationMin = 1
	MaxDurationMin = 1440

	// MaxActivityNameLen caps the label so list rendering stays on one line
	MaxActivityNameLen = 120

	// InvalidID is returned by inserts that did not happen
	InvalidID int64 = -1
)

// Session States
const (
	StateDashboard SessionState = iota
	StateAdd
	StateSettings
	StateEditing
	StateConfirmation
)
