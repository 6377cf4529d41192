package system

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/fitlog/internal/cli"
	"github.com/julianstephens/fitlog/internal/models"
	"github.com/julianstephens/fitlog/internal/storage/sqlite"
	"github.com/julianstephens/fitlog/internal/validation"
)

var fixedNow = time.Date(2024, 6, 15, 9, 0, 0, 0, time.Local)

// setupTestDB returns a context over an uninitialized SQLite file.
func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := sqlite.NewStore(dbPath)
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	out := &bytes.Buffer{}
	ctx := cli.NewContext(store)
	ctx.Validator = validation.NewWithClock(func() time.Time { return fixedNow })
	ctx.Out = out
	ctx.Confirm = func(string) (bool, error) { return false, errors.New("unexpected prompt") }
	return ctx, out, dbPath
}

func setupInitializedDB(t *testing.T) (*cli.Context, *bytes.Buffer, string) {
	t.Helper()
	ctx, out, dbPath := setupTestDB(t)
	if err := ctx.Store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	return ctx, out, dbPath
}

func addActivity(t *testing.T, ctx *cli.Context, name string, minutes int, date string) int64 {
	t.Helper()
	id, err := ctx.Repo.Add(models.NewActivity(name, minutes, date))
	if err != nil {
		t.Fatalf("failed to add activity: %v", err)
	}
	return id
}

func count(t *testing.T, ctx *cli.Context) int {
	t.Helper()
	n, err := ctx.Repo.Count()
	if err != nil {
		t.Fatalf("failed to count activities: %v", err)
	}
	return n
}
