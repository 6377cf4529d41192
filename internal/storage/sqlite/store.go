package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/fitlog/internal/constants"
	"github.com/julianstephens/fitlog/internal/logger"
	"github.com/julianstephens/fitlog/internal/migration"
	"github.com/julianstephens/fitlog/internal/models"
	"github.com/julianstephens/fitlog/internal/storage"
	"github.com/julianstephens/fitlog/migrations"
)

var _ storage.Gateway = (*Store)(nil)

type Store struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// dsn enables a busy timeout so a second connection waits instead of failing with SQLITE_BUSY.
func dsn(path string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
}

func (s *Store) Init() error {
	if _, err := s.Open(); err != nil {
		return err
	}

	// Older files may predate the settings seed.
	if _, err := s.GetSettings(); err != nil {
		defaultSettings := models.Settings{
			NotificationsEnabled: constants.DefaultNotificationsEnabled,
		}
		if err := s.SaveSettings(defaultSettings); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	s.mu.Lock()
	loaded := s.db != nil
	s.mu.Unlock()
	if loaded {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	_, err := s.Open()
	return err
}

// Open returns the shared handle, opening it and bringing the schema up to
// date on first use. It is safe to call again after Close.
func (s *Store) Open() (*sql.DB, error) {
	db, _, err := s.open(logMigration)
	return db, err
}

// open returns the handle and how many migrations were applied to open it.
func (s *Store) open(logFn func(string)) (*sql.DB, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, 0, nil
	}

	db, err := s.connect()
	if err != nil {
		return nil, 0, err
	}

	applied, err := runMigrations(db, logFn)
	if err != nil {
		db.Close()
		return nil, 0, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Debug("Opened SQLite database", "path", s.path)
	s.db = db
	return db, applied, nil
}

func (s *Store) connect() (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(s.path))
	if err != nil {
		return nil, models.StorageError("open database", err)
	}
	// One connection serialises access to the file.
	db.SetMaxOpenConns(1)
	return db, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) EnsureSchema() error {
	_, err := s.Migrate(logMigration)
	return err
}

func (s *Store) Migrate(logFn func(string)) (int, error) {
	s.mu.Lock()
	db := s.db
	s.mu.Unlock()

	if db == nil {
		_, applied, err := s.open(logFn)
		return applied, err
	}
	return runMigrations(db, logFn)
}

// ResetSchema drops every table and re-creates the current schema, discarding
// all data. It does not go through Open, so a database written by a newer
// build can still be reset.
func (s *Store) ResetSchema() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db := s.db
	if db == nil {
		var err error
		if db, err = s.connect(); err != nil {
			return err
		}
	}

	if err := dropTables(db); err != nil {
		if s.db == nil {
			db.Close()
		}
		return err
	}

	logger.Warn("Schema reset", "path", s.path)
	if _, err := runMigrations(db, logMigration); err != nil {
		if s.db == nil {
			db.Close()
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	s.db = db
	return nil
}

func dropTables(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return models.StorageError("reset schema", err)
	}
	defer tx.Rollback()

	for _, table := range []string{constants.TableActivities, "settings", "schema_version"} {
		if _, err := tx.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			return models.StorageError("drop "+table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return models.StorageError("reset schema", err)
	}
	return nil
}

// SchemaVersion reports the stored and the newest known schema version. It
// reads without migrating so a too-new database can still be inspected.
func (s *Store) SchemaVersion() (int, int, error) {
	s.mu.Lock()
	db := s.db
	s.mu.Unlock()

	if db == nil {
		raw, err := s.connect()
		if err != nil {
			return 0, 0, err
		}
		defer raw.Close()
		db = raw
	}

	runner, err := newRunner(db)
	if err != nil {
		return 0, 0, err
	}
	current, err := runner.GetCurrentVersion()
	if err != nil {
		return 0, 0, err
	}
	latest, err := runner.GetLatestVersion()
	if err != nil {
		return 0, 0, err
	}
	return current, latest, nil
}

func (s *Store) Driver() string {
	return constants.DriverSQLite
}

func (s *Store) GetConfigPath() string {
	return s.path
}

func newRunner(db *sql.DB) (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(db, subFS, migration.DriverSQLite)
}

func runMigrations(db *sql.DB, logFn func(string)) (int, error) {
	runner, err := newRunner(db)
	if err != nil {
		return 0, err
	}
	return runner.ApplyMigrations(logFn)
}

func logMigration(msg string) {
	logger.Debug(msg)
}
