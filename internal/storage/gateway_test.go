package storage_test

import (
	"database/sql"
	"errors"

	"github.com/julianstephens/fitlog/internal/constants"
	"github.com/julianstephens/fitlog/internal/models"
)

// failingGateway reports a storage failure from every call.
type failingGateway struct{}

var errDiskFull = errors.New("disk full")

func (failingGateway) fail(op string) error { return models.StorageError(op, errDiskFull) }

func (g failingGateway) Init() error { return g.fail("init") }
func (g failingGateway) Load() error { return g.fail("load") }
func (g failingGateway) Open() (*sql.DB, error) { return nil, g.fail("open database") }
func (g failingGateway) Close() error { return nil }
func (g failingGateway) EnsureSchema() error { return g.fail("ensure schema") }
func (g failingGateway) ResetSchema() error { return g.fail("reset schema") }
func (g failingGateway) Migrate(func(string)) (int, error) { return 0, g.fail("migrate") }
func (g failingGateway) SchemaVersion() (int, int, error) { return 0, 0, g.fail("schema version") }
func (g failingGateway) Count() (int, error) { return 0, g.fail("count") }
func (g failingGateway) SumDuration() (int, error) { return 0, g.fail("sum") }
func (g failingGateway) DeleteAll() (int64, error) { return 0, g.fail("delete all") }
func (g failingGateway) GetSettings() (models.Settings, error) {
	return models.Settings{}, g.fail("get settings")
}
func (g failingGateway) SaveSettings(models.Settings) error { return g.fail("save settings") }
func (g failingGateway) Driver() string { return constants.DriverSQLite }
func (g failingGateway) GetConfigPath() string { return "" }
