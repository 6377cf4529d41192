package activitylist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/fitlog/internal/models"
)

type AddActivityMsg struct{}

type EditActivityMsg struct {
	Activity models.Activity
}

type DeleteActivityMsg struct {
	Activity models.Activity
}

type RefreshMsg struct{}

type Item struct {
	Activity models.Activity
}

func (i Item) Title() string { return i.Activity.Name }
func (i Item) Description() string {
	return fmt.Sprintf("%s | %s", models.FormatMinutes(i.Activity.DurationMin), i.Activity.Date)
}
func (i Item) FilterValue() string { return i.Activity.Name }

type KeyMap struct {
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Refresh key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(activities []models.Activity, width, height int) Model {
	l := list.New(toItems(activities), list.NewDefaultDelegate(), width, height)
	l.Title = "Activities"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	// q and esc belong to the main model
	l.KeyMap.Quit.SetEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Refresh}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Refresh}
	}

	return Model{list: l, keys: keys}
}

func toItems(activities []models.Activity) []list.Item {
	items := make([]list.Item, len(activities))
	for i, a := range activities {
		items[i] = Item{Activity: a}
	}
	return items
}

// SetActivities replaces the displayed rows with a fresh read from the store.
func (m *Model) SetActivities(activities []models.Activity) tea.Cmd {
	return m.list.SetItems(toItems(activities))
}

func (m Model) Len() int {
	return len(m.list.Items())
}

// Selected returns the highlighted activity, if any.
func (m Model) Selected() (models.Activity, bool) {
	i, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Activity{}, false
	}
	return i.Activity, true
}

// Filtering reports whether keystrokes are going to the filter input.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddActivityMsg{} }
		case key.Matches(msg, m.keys.Refresh):
			return m, func() tea.Msg { return RefreshMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if a, ok := m.Selected(); ok {
				return m, func() tea.Msg { return EditActivityMsg{Activity: a} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if a, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteActivityMsg{Activity: a} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && !m.Filtering() {
		return "\n  No activities yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
