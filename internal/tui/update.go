package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/fitlog/internal/constants"
	"github.com/julianstephens/fitlog/internal/logger"
	"github.com/julianstephens/fitlog/internal/models"
	"github.com/julianstephens/fitlog/internal/tui/components/activitylist"
	"github.com/julianstephens/fitlog/internal/tui/components/settings"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case activitiesLoadedMsg:
		return m, m.activityList.SetActivities(msg.activities)

	case statsLoadedMsg:
		m.settingsModel.SetStats(msg.stats)
		m.settingsModel.SetSettings(msg.settings)
		return m, nil

	case activitySavedMsg:
		m.formError = ""
		if msg.updated {
			m.status = fmt.Sprintf("Updated %s", msg.activity.Name)
		} else {
			m.status = fmt.Sprintf("Added %s (%s)", msg.activity.Name, models.FormatMinutes(msg.activity.DurationMin))
		}
		m.resetActivityForm()
		return m, tea.Batch(m.toDashboard(), loadStats(m.repo))

	case activityDeletedMsg:
		if msg.rows == 0 {
			m.formError = fmt.Sprintf("activity %d no longer exists", msg.id)
		} else {
			m.status = "Activity deleted"
		}
		return m, tea.Batch(loadActivities(m.repo), loadStats(m.repo))

	case activitiesClearedMsg:
		m.status = fmt.Sprintf("All data cleared (%d activities deleted)", msg.deleted)
		return m, tea.Batch(loadActivities(m.repo), loadStats(m.repo))

	case settingsSavedMsg:
		m.settingsModel.SetSettings(msg.settings)
		m.status = "Settings saved"
		return m, nil

	case formDiscardedMsg:
		m.resetActivityForm()
		return m, m.toDashboard()

	case errMsg:
		logger.Error("TUI storage call failed", "error", msg.err)
		m.formError = msg.Error()
		m.saving = false
		// keep the typed values so the user can retry
		if m.form != nil && m.form.State == huh.StateCompleted {
			m.form = NewActivityForm(m.activityForm, m.validator)
			return m, m.form.Init()
		}
		return m, nil

	case activitylist.AddActivityMsg:
		return m, m.startForm(models.Activity{Date: m.validator.Today()})

	case activitylist.EditActivityMsg:
		return m, m.startForm(msg.Activity)

	case activitylist.DeleteActivityMsg:
		a := msg.Activity
		return m, m.confirm(
			fmt.Sprintf("Delete %s (%s on %s)?", a.Name, models.FormatMinutes(a.DurationMin), a.Date),
			func() tea.Cmd { return deleteActivity(m.repo, a.ID) },
		)

	case activitylist.RefreshMsg:
		m.status = ""
		return m, tea.Batch(loadActivities(m.repo), loadStats(m.repo))

	case settings.ToggleNotificationsMsg:
		s := m.settingsModel.Settings()
		s.NotificationsEnabled = !s.NotificationsEnabled
		return m, saveSettings(m.repo, s)

	case settings.ClearAllMsg:
		if msg.Count == 0 {
			m.status = "Nothing to clear"
			return m, nil
		}
		return m, m.confirm(
			fmt.Sprintf("Delete all %d activities?", msg.Count),
			func() tea.Cmd { return clearActivities(m.repo) },
		)

	case constants.ConfirmationMsg:
		return m, m.confirm(msg.Message, msg.Action)
	}

	switch m.state {
	case constants.StateAdd, constants.StateEditing:
		return m.updateForm(msg)
	case constants.StateConfirmation:
		return m.updateConfirmation(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateDashboard:
		m.activityList, cmd = m.activityList.Update(msg)
	case constants.StateSettings:
		m.settingsModel, cmd = m.settingsModel.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return true, tea.Quit
	}
	// the list filter needs every printable key
	if m.state == constants.StateDashboard && m.activityList.Filtering() {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		m.status = ""
		if m.state == constants.StateDashboard {
			return true, m.toSettings()
		}
		return true, m.toDashboard()
	case key.Matches(msg, m.keys.Back):
		if m.state == constants.StateSettings {
			return true, m.toDashboard()
		}
		m.formError = ""
		m.status = ""
		return true, nil
	}
	return false, nil
}

func (m *Model) startForm(a models.Activity) tea.Cmd {
	fm := ActivityFormModel{Date: a.Date}
	if a.IsPersisted() {
		fm = formFromActivity(a)
		m.state = constants.StateEditing
	} else {
		m.state = constants.StateAdd
	}
	m.activityForm = &fm
	m.formOrigin = fm
	m.editingID = a.ID
	m.formError = ""
	m.status = ""
	m.form = NewActivityForm(m.activityForm, m.validator)
	return m.form.Init()
}

func (m *Model) resetActivityForm() {
	m.form = nil
	m.activityForm = nil
	m.formOrigin = ActivityFormModel{}
	m.editingID = 0
	m.saving = false
}

// formDirty reports whether the user typed anything since the form opened.
func (m Model) formDirty() bool {
	return m.activityForm != nil && *m.activityForm != m.formOrigin
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// the completed form stays on screen until the save reports back
	if m.saving {
		return m, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		if m.formDirty() {
			return m, m.confirm("Discard unsaved changes?", func() tea.Cmd { return discardForm })
		}
		m.resetActivityForm()
		return m, m.toDashboard()
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		cmds = append(cmds, m.submitForm())
	case huh.StateAborted:
		m.resetActivityForm()
		cmds = append(cmds, m.toDashboard())
	}
	return m, tea.Batch(cmds...)
}

// submitForm validates the completed form and hands the write to a command.
func (m *Model) submitForm() tea.Cmd {
	a, err := m.activityForm.toActivity(m.validator, m.editingID)
	if err != nil {
		// huh validates each field, so this only trips if the clock moved past midnight
		m.formError = err.Error()
		m.form = NewActivityForm(m.activityForm, m.validator)
		return m.form.Init()
	}
	m.saving = true
	return saveActivity(m.repo, a)
}

// confirm opens a yes/no dialog and runs action when the user accepts.
func (m *Model) confirm(title string, action func() tea.Cmd) tea.Cmd {
	if m.state != constants.StateConfirmation {
		m.previousState = m.state
	}
	m.state = constants.StateConfirmation
	m.confirmationForm = &ConfirmationFormModel{}
	m.pendingAction = action
	m.confirmForm = NewConfirmationForm(title, m.confirmationForm)
	return m.confirmForm.Init()
}

func (m *Model) closeConfirmation() {
	m.pendingAction = nil
	m.confirmForm = nil
	m.confirmationForm = nil
	m.state = m.previousState
}

func (m Model) updateConfirmation(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeConfirmation()
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.confirmForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirmForm = f
	}
	cmds = append(cmds, cmd)

	switch m.confirmForm.State {
	case huh.StateCompleted:
		action := m.pendingAction
		confirmed := m.confirmationForm.Confirmed
		m.closeConfirmation()
		if confirmed && action != nil {
			cmds = append(cmds, action())
		}
	case huh.StateAborted:
		m.closeConfirmation()
	}
	return m, tea.Batch(cmds...)
}
