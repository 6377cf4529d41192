package storage

import (
	"database/sql"

	"github.com/julianstephens/fitlog/internal/models"
)

// Gateway owns the database handle and the activities table schema.
// One Gateway is constructed by the caller and shared by every consumer.
type Gateway interface {
	// Lifecycle
	Init() error
	Load() error
	Open() (*sql.DB, error)
	Close() error

	// Schema
	EnsureSchema() error
	ResetSchema() error
	Migrate(logFn func(string)) (int, error)
	SchemaVersion() (current int, latest int, err error)

	// Table-level statistics and bulk delete
	Count() (int, error)
	SumDuration() (int, error)
	DeleteAll() (int64, error)

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Utils
	Driver() string
	GetConfigPath() string
}
