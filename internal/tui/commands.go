package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/fitlog/internal/logger"
	"github.com/julianstephens/fitlog/internal/models"
	"github.com/julianstephens/fitlog/internal/storage"
)

// Storage calls block, so they run as commands and report back with these messages.

type activitiesLoadedMsg struct {
	activities []models.Activity
}

type statsLoadedMsg struct {
	stats    models.Stats
	settings models.Settings
}

type activitySavedMsg struct {
	activity models.Activity
	updated  bool
}

type activityDeletedMsg struct {
	id   int64
	rows int64
}

type activitiesClearedMsg struct {
	deleted int64
}

type settingsSavedMsg struct {
	settings models.Settings
}

type formDiscardedMsg struct{}

type errMsg struct {
	err error
}

func (e errMsg) Error() string { return e.err.Error() }

func loadActivities(repo *storage.Repository) tea.Cmd {
	return func() tea.Msg {
		activities, err := repo.GetAll()
		if err != nil {
			return errMsg{err}
		}
		return activitiesLoadedMsg{activities: activities}
	}
}

func loadStats(repo *storage.Repository) tea.Cmd {
	return func() tea.Msg {
		stats, err := repo.Stats()
		if err != nil {
			return errMsg{err}
		}
		settings, err := repo.Gateway().GetSettings()
		if err != nil {
			return errMsg{err}
		}
		return statsLoadedMsg{stats: stats, settings: settings}
	}
}

// saveActivity inserts unpersisted activities and updates the rest.
func saveActivity(repo *storage.Repository, a models.Activity) tea.Cmd {
	return func() tea.Msg {
		if !a.IsPersisted() {
			id, err := repo.Add(a)
			if err != nil {
				return errMsg{err}
			}
			a.ID = id
			return activitySavedMsg{activity: a}
		}

		rows, err := repo.Update(a)
		if err != nil {
			return errMsg{err}
		}
		if rows == 0 {
			return errMsg{fmt.Errorf("activity %d: %w", a.ID, models.ErrNotFound)}
		}
		return activitySavedMsg{activity: a, updated: true}
	}
}

func deleteActivity(repo *storage.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		rows, err := repo.Delete(id)
		if err != nil {
			return errMsg{err}
		}
		return activityDeletedMsg{id: id, rows: rows}
	}
}

func clearActivities(repo *storage.Repository) tea.Cmd {
	return func() tea.Msg {
		n, err := repo.DeleteAll()
		if err != nil {
			return errMsg{err}
		}
		return activitiesClearedMsg{deleted: n}
	}
}

func saveSettings(repo *storage.Repository, settings models.Settings) tea.Cmd {
	return func() tea.Msg {
		if err := repo.Gateway().SaveSettings(settings); err != nil {
			logger.Error("Failed to save settings", "error", err)
			return errMsg{err}
		}
		return settingsSavedMsg{settings: settings}
	}
}

func discardForm() tea.Msg {
	return formDiscardedMsg{}
}
