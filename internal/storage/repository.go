package storage

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/julianstephens/fitlog/internal/constants"
	"github.com/julianstephens/fitlog/internal/logger"
	"github.com/julianstephens/fitlog/internal/models"
)

const (
	activityColumns = "id, activity_name, duration, date"

	insertActivity    = "INSERT INTO fitness_activities (activity_name, duration, date) VALUES (?, ?, ?)"
	selectAll         = "SELECT " + activityColumns + " FROM fitness_activities ORDER BY date DESC, id ASC"
	selectByID        = "SELECT " + activityColumns + " FROM fitness_activities WHERE id = ?"
	selectByDate      = "SELECT " + activityColumns + " FROM fitness_activities WHERE date = ? ORDER BY date DESC, id ASC"
	updateActivity    = "UPDATE fitness_activities SET activity_name = ?, duration = ?, date = ? WHERE id = ?"
	deleteActivityRow = "DELETE FROM fitness_activities WHERE id = ?"
)

// Repository is the record-level API over the activities table. Every call
// opens the store through the Gateway and runs a single statement. Writes are
// serialised by a table-level lock.
type Repository struct {
	gw Gateway
	mu sync.Mutex
}

func NewRepository(gw Gateway) *Repository {
	return &Repository{gw: gw}
}

// Gateway returns the gateway the repository was built with.
func (r *Repository) Gateway() Gateway {
	return r.gw
}

// Add inserts a and returns the id the store assigned. a.ID is ignored.
// On failure the id is constants.InvalidID.
func (r *Repository) Add(a models.Activity) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	db, err := r.gw.Open()
	if err != nil {
		return constants.InvalidID, err
	}

	var id int64
	if r.gw.Driver() == constants.DriverPostgres {
		q := Rebind(constants.DriverPostgres, insertActivity+" RETURNING id")
		if err := db.QueryRow(q, a.Name, a.DurationMin, a.Date).Scan(&id); err != nil {
			return constants.InvalidID, models.StorageError("insert activity", err)
		}
	} else {
		res, err := db.Exec(insertActivity, a.Name, a.DurationMin, a.Date)
		if err != nil {
			return constants.InvalidID, models.StorageError("insert activity", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return constants.InvalidID, models.StorageError("insert activity", err)
		}
	}

	logger.Debug("Activity added", "id", id, "name", a.Name, "date", a.Date)
	return id, nil
}

// GetAll returns every activity, newest date first. Activities sharing a
// date keep insertion order.
func (r *Repository) GetAll() ([]models.Activity, error) {
	db, err := r.gw.Open()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(selectAll)
	if err != nil {
		return nil, models.StorageError("list activities", err)
	}
	return scanActivities(rows, "list activities")
}

// GetByID looks up a single activity. A missing id is not an error: found is false.
func (r *Repository) GetByID(id int64) (models.Activity, bool, error) {
	db, err := r.gw.Open()
	if err != nil {
		return models.Activity{}, false, err
	}

	var a models.Activity
	err = db.QueryRow(r.rebind(selectByID), id).Scan(&a.ID, &a.Name, &a.DurationMin, &a.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Activity{}, false, nil
	}
	if err != nil {
		return models.Activity{}, false, models.StorageError("get activity", err)
	}
	return a, true, nil
}

// GetByDate returns the activities logged on date (YYYY-MM-DD).
func (r *Repository) GetByDate(date string) ([]models.Activity, error) {
	db, err := r.gw.Open()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(r.rebind(selectByDate), date)
	if err != nil {
		return nil, models.StorageError("list activities by date", err)
	}
	return scanActivities(rows, "list activities by date")
}

// Update replaces name, duration and date of the row with a.ID.
// It returns 1 when the row was updated and 0 when no row has that id.
func (r *Repository) Update(a models.Activity) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	db, err := r.gw.Open()
	if err != nil {
		return 0, err
	}
	res, err := db.Exec(r.rebind(updateActivity), a.Name, a.DurationMin, a.Date, a.ID)
	if err != nil {
		return 0, models.StorageError("update activity", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, models.StorageError("update activity", err)
	}
	logger.Debug("Activity updated", "id", a.ID, "rows", n)
	return n, nil
}

// Delete removes the row with id, returning 1 or 0.
func (r *Repository) Delete(id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	db, err := r.gw.Open()
	if err != nil {
		return 0, err
	}
	res, err := db.Exec(r.rebind(deleteActivityRow), id)
	if err != nil {
		return 0, models.StorageError("delete activity", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, models.StorageError("delete activity", err)
	}
	logger.Debug("Activity deleted", "id", id, "rows", n)
	return n, nil
}

func (r *Repository) DeleteAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, err := r.gw.DeleteAll()
	if err != nil {
		return 0, err
	}
	logger.Info("All activities deleted", "rows", n)
	return n, nil
}

func (r *Repository) Count() (int, error) {
	return r.gw.Count()
}

func (r *Repository) TotalDuration() (int, error) {
	return r.gw.SumDuration()
}

// Stats gathers the totals shown on the settings screen.
func (r *Repository) Stats() (models.Stats, error) {
	count, err := r.gw.Count()
	if err != nil {
		return models.Stats{}, err
	}
	total, err := r.gw.SumDuration()
	if err != nil {
		return models.Stats{}, err
	}
	return models.Stats{TotalActivities: count, TotalDurationMin: total}, nil
}

func (r *Repository) rebind(query string) string {
	return Rebind(r.gw.Driver(), query)
}

// Rebind rewrites ? placeholders into the numbered $n form PostgreSQL expects.
// Queries for other drivers are returned unchanged.
func Rebind(driver, query string) string {
	if driver != constants.DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func scanActivities(rows *sql.Rows, op string) ([]models.Activity, error) {
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.DurationMin, &a.Date); err != nil {
			return nil, models.StorageError(op, err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, models.StorageError(op, err)
	}
	return activities, nil
}
