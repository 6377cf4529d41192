package sqlite

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/fitlog/internal/constants"
	"github.com/julianstephens/fitlog/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	db, err := s.Open()
	if err != nil {
		return models.Settings{}, err
	}

	rows, err := db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, models.StorageError("read settings", err)
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, models.StorageError("read settings", err)
		}
		switch key {
		case constants.SettingNotificationsEnabled:
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			settings.NotificationsEnabled = enabled
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, models.StorageError("read settings", err)
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	db, err := s.Open()
	if err != nil {
		return err
	}

	_, err = db.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)",
		constants.SettingNotificationsEnabled, strconv.FormatBool(settings.NotificationsEnabled))
	if err != nil {
		return models.StorageError("save settings", err)
	}
	return nil
}
