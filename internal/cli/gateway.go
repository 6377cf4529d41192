package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/fitlog/internal/constants"
	"github.com/julianstephens/fitlog/internal/keyring"
	"github.com/julianstephens/fitlog/internal/logger"
	"github.com/julianstephens/fitlog/internal/storage"
	"github.com/julianstephens/fitlog/internal/storage/postgres"
	"github.com/julianstephens/fitlog/internal/storage/sqlite"
)

// ErrEmbeddedPassword is returned when --config carries a PostgreSQL password.
var ErrEmbeddedPassword = errors.New("PostgreSQL connection strings with embedded credentials are not allowed in --config; " +
	"store the connection string with 'fitlog keyring set', export " + constants.ConnectionEnvVar + ", or use a .pgpass file")

// NewGateway picks the storage backend for config.
//
// A PostgreSQL URL or DSN selects PostgreSQL directly. When config is the
// default SQLite path, a connection string from the environment or the OS
// keyring takes precedence. Anything else is a SQLite file path.
func NewGateway(config string) (storage.Gateway, error) {
	if postgres.IsConnString(config) {
		if _, err := postgres.ValidateConnString(config); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, ErrEmbeddedPassword
			}
			return nil, err
		}
		return postgres.New(config), nil
	}

	if config == constants.DefaultConfigPath {
		if connStr := os.Getenv(constants.ConnectionEnvVar); connStr != "" {
			if err := validateStoredConnString(connStr); err != nil {
				return nil, fmt.Errorf("%s: %w", constants.ConnectionEnvVar, err)
			}
			logger.Debug("Using PostgreSQL connection from environment")
			return postgres.New(connStr), nil
		}

		connStr, err := keyring.GetConnectionString()
		switch {
		case err == nil:
			if err := validateStoredConnString(connStr); err != nil {
				return nil, fmt.Errorf("keyring: %w", err)
			}
			logger.Debug("Using PostgreSQL connection from keyring")
			return postgres.New(connStr), nil
		case errors.Is(err, keyring.ErrNotFound):
		default:
			logger.Debug("Keyring lookup failed, using SQLite", "error", err)
		}
	}

	path, err := ExpandPath(config)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

// Secrets held in the environment or keyring may carry a password.
func validateStoredConnString(connStr string) error {
	if _, err := postgres.ValidateConnString(connStr); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
		return err
	}
	return nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// ConfigDir returns the directory that holds logs for the given --config value.
func ConfigDir(config string) string {
	base := config
	if postgres.IsConnString(config) {
		base = constants.DefaultConfigPath
	}
	path, err := ExpandPath(base)
	if err != nil {
		return "."
	}
	return filepath.Dir(path)
}
