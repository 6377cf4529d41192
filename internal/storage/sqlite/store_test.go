package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/fitlog/internal/migration"
	"github.com/julianstephens/fitlog/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "nested", "fitlog.db"))
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })
	return store
}

func insertRow(t *testing.T, db *sql.DB, name string, minutes int, date string) {
	t.Helper()
	_, err := db.Exec("INSERT INTO fitness_activities (activity_name, duration, date) VALUES (?, ?, ?)", name, minutes, date)
	require.NoError(t, err)
}

func TestInitCreatesDirectoryAndSchema(t *testing.T) {
	store := setupTestStore(t)

	_, err := os.Stat(store.GetConfigPath())
	require.NoError(t, err)

	current, latest, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, latest, current)
	assert.Greater(t, latest, 0)
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))

	err := store.Load()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "fitlog init"), "got %v", err)
}

func TestOpenIsIdempotent(t *testing.T) {
	store := setupTestStore(t)

	first, err := store.Open()
	require.NoError(t, err)
	second, err := store.Open()
	require.NoError(t, err)
	assert.Same(t, first, second)

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	third, err := store.Open()
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestCountSumDeleteAll(t *testing.T) {
	store := setupTestStore(t)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	sum, err := store.SumDuration()
	require.NoError(t, err)
	assert.Equal(t, 0, sum)

	db, err := store.Open()
	require.NoError(t, err)
	insertRow(t, db, "Run", 30, "2024-06-01")
	insertRow(t, db, "Swim", 45, "2024-06-02")

	n, err = store.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	sum, err = store.SumDuration()
	require.NoError(t, err)
	assert.Equal(t, 75, sum)

	removed, err := store.DeleteAll()
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	n, err = store.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestResetSchema(t *testing.T) {
	store := setupTestStore(t)

	db, err := store.Open()
	require.NoError(t, err)
	insertRow(t, db, "Run", 30, "2024-06-01")
	require.NoError(t, store.SaveSettings(models.Settings{NotificationsEnabled: true}))

	require.NoError(t, store.ResetSchema())

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	settings, err := store.GetSettings()
	require.NoError(t, err)
	assert.False(t, settings.NotificationsEnabled)

	current, latest, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, latest, current)
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	require.NoError(t, err)
	assert.False(t, settings.NotificationsEnabled)

	require.NoError(t, store.SaveSettings(models.Settings{NotificationsEnabled: true}))

	settings, err = store.GetSettings()
	require.NoError(t, err)
	assert.True(t, settings.NotificationsEnabled)
}

func TestLoadRejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitlog.db")
	store := NewStore(path)
	require.NoError(t, store.Init())

	db, err := store.Open()
	require.NoError(t, err)
	insertRow(t, db, "Run", 30, "2024-06-01")
	_, err = db.Exec("UPDATE schema_version SET version = 99")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened := NewStore(path)
	err = reopened.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, migration.ErrSchemaTooNew)

	// The data must survive a refused open.
	raw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer raw.Close()
	var n int
	require.NoError(t, raw.QueryRow("SELECT COUNT(*) FROM fitness_activities").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestMigrateReportsNothingPending(t *testing.T) {
	store := setupTestStore(t)

	var lines []string
	count, err := store.Migrate(func(s string) { lines = append(lines, s) })
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "up to date")
}

func TestResetSchemaRecoversNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitlog.db")
	store := NewStore(path)
	require.NoError(t, store.Init())
	db, err := store.Open()
	require.NoError(t, err)
	_, err = db.Exec("UPDATE schema_version SET version = 99")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	current, _, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 99, current)

	require.NoError(t, store.ResetSchema())
	t.Cleanup(func() { store.Close() })

	current, latest, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, latest, current)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
