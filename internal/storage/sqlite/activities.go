package sqlite

import (
	"github.com/julianstephens/fitlog/internal/models"
)

func (s *Store) Count() (int, error) {
	db, err := s.Open()
	if err != nil {
		return 0, err
	}
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM fitness_activities").Scan(&n); err != nil {
		return 0, models.StorageError("count activities", err)
	}
	return n, nil
}

func (s *Store) SumDuration() (int, error) {
	db, err := s.Open()
	if err != nil {
		return 0, err
	}
	var total int
	if err := db.QueryRow("SELECT COALESCE(SUM(duration), 0) FROM fitness_activities").Scan(&total); err != nil {
		return 0, models.StorageError("sum durations", err)
	}
	return total, nil
}

func (s *Store) DeleteAll() (int64, error) {
	db, err := s.Open()
	if err != nil {
		return 0, err
	}
	res, err := db.Exec("DELETE FROM fitness_activities")
	if err != nil {
		return 0, models.StorageError("delete all activities", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, models.StorageError("delete all activities", err)
	}
	return n, nil
}
