package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/fitlog/internal/cli"
	"github.com/julianstephens/fitlog/internal/constants"
	"github.com/julianstephens/fitlog/internal/keyring"
	"github.com/julianstephens/fitlog/internal/migration"
)

type DoctorCmd struct{}

type check struct {
	name string
	// needsDB checks are skipped when the database cannot be opened
	needsDB bool
	// warnOnly failures are reported but do not fail the command
	warnOnly bool
	run      func(ctx *cli.Context) error
	// skip returns a reason when the check does not apply
	skip func(ctx *cli.Context) string
}

var checks = []check{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsDB: true, run: checkMigrationsComplete},
	{name: "Settings readable", needsDB: true, run: checkSettings},
	{name: "Data validation", needsDB: true, run: checkValidation},
	{name: "Statistics", needsDB: true, run: checkStatistics},
	{name: "Clock/timezone", run: func(*cli.Context) error { return checkClockTimezone(time.Now()) }},
	{name: "Keyring", warnOnly: true, run: checkKeyring, skip: func(ctx *cli.Context) string {
		if ctx.Store.Driver() != constants.DriverPostgres {
			return "SQLite storage"
		}
		return ""
	}},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		ctx.Printf("❌ Database reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		if c.skip != nil {
			if reason := c.skip(ctx); reason != "" {
				ctx.Printf("⊘ %s: SKIPPED (%s)\n", c.name, reason)
				continue
			}
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		// Reachable, but too new to open. The schema check reports it.
		if errors.Is(err, migration.ErrSchemaTooNew) {
			return nil
		}
		return fmt.Errorf("failed to load database: %w", err)
	}
	db, err := ctx.Store.Open()
	if err != nil {
		return err
	}
	var result int
	if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	current, latest, err := ctx.Store.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d) - please upgrade %s", current, latest, constants.AppName)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	current, latest, err := ctx.Store.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	activities, err := ctx.Repo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to get activities: %w", err)
	}

	issues := ctx.Validator.CheckStored(activities)
	if len(issues) == 0 {
		return nil
	}
	for _, issue := range issues {
		ctx.Printf("   activity #%d: %s\n", issue.ActivityID, issue.Description)
	}
	return fmt.Errorf("%d stored activities have invalid fields", len(issues))
}

// checkStatistics cross-checks the aggregate queries against the rows.
func checkStatistics(ctx *cli.Context) error {
	activities, err := ctx.Repo.GetAll()
	if err != nil {
		return err
	}
	stats, err := ctx.Repo.Stats()
	if err != nil {
		return err
	}

	sum := 0
	for _, a := range activities {
		sum += a.DurationMin
	}
	if stats.TotalActivities != len(activities) || stats.TotalDurationMin != sum {
		return fmt.Errorf("aggregates disagree with rows: count %d vs %d, duration %d vs %d",
			stats.TotalActivities, len(activities), stats.TotalDurationMin, sum)
	}
	return nil
}

func checkClockTimezone(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return errors.New("OS keyring is not available; use " + constants.ConnectionEnvVar + " or .pgpass")
	}
	return nil
}
