package system

import (
	"strings"
	"testing"
)

func TestMigrateCmd_FreshDatabase(t *testing.T) {
	ctx, out, _ := setupTestDB(t)

	cmd := &MigrateCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !strings.Contains(out.String(), "Successfully applied 3 migration(s).") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestMigrateCmd_UpToDate(t *testing.T) {
	ctx, out, _ := setupInitializedDB(t)

	cmd := &MigrateCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !strings.Contains(out.String(), "No migrations to apply") {
		t.Errorf("unexpected output: %q", out.String())
	}
}
