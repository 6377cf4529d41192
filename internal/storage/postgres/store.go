package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"sync"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/fitlog/internal/constants"
	"github.com/julianstephens/fitlog/internal/logger"
	"github.com/julianstephens/fitlog/internal/migration"
	"github.com/julianstephens/fitlog/internal/models"
	"github.com/julianstephens/fitlog/internal/storage"
	"github.com/julianstephens/fitlog/migrations"
)

var _ storage.Gateway = (*Store)(nil)

type Store struct {
	connStr string

	mu sync.Mutex
	db *sql.DB
}

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

func New(connStr string) *Store {
	s := &Store{
		connStr: connStr,
	}
	s.ensureSearchPath()
	return s
}

// IsConnString reports whether config names a PostgreSQL database rather than a SQLite file.
func IsConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") ||
		strings.Contains(config, "host=") || strings.Contains(config, "dbname=")
}

func (s *Store) ensureSearchPath() {
	if strings.HasPrefix(s.connStr, "postgres://") || strings.HasPrefix(s.connStr, "postgresql://") {
		u, err := url.Parse(s.connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "error", err)
			return
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
			s.connStr = u.String()
		}
	} else if !hasSearchPathParam(s.connStr) {
		s.connStr = strings.TrimSpace(s.connStr) + " search_path=" + constants.AppName
	}
}

// hasSearchPathParam returns true if the given DSN-style connection string
// contains a search_path parameter key (case-insensitive).
func hasSearchPathParam(connStr string) bool {
	return hasDSNKey(connStr, "search_path")
}

// hasSSLMode checks if the connection string contains an sslmode parameter key (case-insensitive).
// It supports both URL-style and DSN-style connection strings.
func hasSSLMode(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for key := range u.Query() {
			if strings.EqualFold(key, "sslmode") {
				return true
			}
		}
	}
	return hasDSNKey(connStr, "sslmode")
}

func hasDSNKey(connStr, key string) bool {
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		if strings.EqualFold(kv[0], key) {
			return true
		}
	}
	return false
}

// ValidateConnString checks that connStr is a PostgreSQL URI or DSN that
// does not carry a password. Passwords belong in the keyring or ~/.pgpass.
func ValidateConnString(connStr string) (bool, error) {
	if strings.TrimSpace(connStr) == "" {
		return false, fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return false, fmt.Errorf("%w: invalid connection string format: %v", ErrInvalidConnectionString, err)
	}

	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		parsedURL, err := url.Parse(connStr)
		if err != nil {
			return false, fmt.Errorf("%w: failed to parse connection URL: %v", ErrInvalidConnectionString, err)
		}

		if _, isSet := parsedURL.User.Password(); isSet {
			return false, ErrEmbeddedCredentials
		}

		if parsedURL.Host == "" && parsedURL.User == nil && (parsedURL.Path == "" || parsedURL.Path == "/") {
			return false, fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
		}
	} else if hasDSNKey(connStr, "password") {
		return false, ErrEmbeddedCredentials
	}

	return true, nil
}

func (s *Store) Init() error {
	if _, err := s.Open(); err != nil {
		return err
	}

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
	_, err := s.Open()
	return err
}

// Open connects, creates the fitlog schema and applies pending migrations
// on first use. Later calls return the same pool.
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

	logger.Debug("Opened PostgreSQL database")
	s.db = db
	return db, applied, nil
}

func (s *Store) connect() (*sql.DB, error) {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return nil, models.StorageError("open database", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(s.connStr) {
			return nil, fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + constants.AppName); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
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

// ResetSchema drops the fitlog tables and re-applies every migration.
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

	logger.Warn("Schema reset", "driver", constants.DriverPostgres)
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
	return constants.DriverPostgres
}

func (s *Store) GetConfigPath() string {
	// Never expose the connection string.
	return "postgresql"
}

func newRunner(db *sql.DB) (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(db, subFS, migration.DriverPostgres)
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
