package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/fitlog/internal/constants"
	"github.com/julianstephens/fitlog/internal/storage"
	"github.com/julianstephens/fitlog/internal/tui/components/activitylist"
	"github.com/julianstephens/fitlog/internal/tui/components/settings"
	"github.com/julianstephens/fitlog/internal/validation"
)

type Model struct {
	repo      *storage.Repository
	validator *validation.Validator

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	activityList  activitylist.Model
	settingsModel settings.Model

	// add/edit form; editingID is 0 when adding
	form         *huh.Form
	activityForm *ActivityFormModel
	formOrigin   ActivityFormModel
	editingID    int64

	// set while a completed form's write is in flight
	saving bool

	confirmForm      *huh.Form
	confirmationForm *ConfirmationFormModel
	pendingAction    func() tea.Cmd

	status    string
	formError string
	width     int
	height    int
	quitting  bool
}

func NewModel(repo *storage.Repository, validator *validation.Validator) Model {
	return Model{
		repo:          repo,
		validator:     validator,
		state:         constants.StateDashboard,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		activityList:  activitylist.New(nil, 0, 0),
		settingsModel: settings.New(0, 0),
	}
}

// Init loads the dashboard and the settings screen data.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadActivities(m.repo), loadStats(m.repo))
}

// State returns the active screen.
func (m Model) State() constants.SessionState {
	return m.state
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateDashboard:
		keys = append(keys, m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Refresh)
	case constants.StateSettings:
		keys = append(keys, m.keys.Toggle, m.keys.Clear)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Back, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateDashboard:
		actions = []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Refresh}
	case constants.StateSettings:
		actions = []key.Binding{m.keys.Toggle, m.keys.Clear}
	}

	return [][]key.Binding{global, navigation, actions}
}

// toDashboard switches to the list and re-reads it from the store.
func (m *Model) toDashboard() tea.Cmd {
	m.state = constants.StateDashboard
	return loadActivities(m.repo)
}

func (m *Model) toSettings() tea.Cmd {
	m.state = constants.StateSettings
	return loadStats(m.repo)
}

func (m *Model) contentHeight() int {
	// tabs, status line and help
	h := m.height - 6
	if h < 0 {
		return 0
	}
	return h
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.activityList.SetSize(width-4, m.contentHeight())
	m.settingsModel.SetSize(width, m.contentHeight())
}
