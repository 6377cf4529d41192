package settings

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/fitlog/internal/models"
)

type ToggleNotificationsMsg struct{}

type ClearAllMsg struct {
	Count int
}

type KeyMap struct {
	Toggle key.Binding
	Clear  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("n", " "),
			key.WithHelp("n", "toggle notifications"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear all data"),
		),
	}
}

type Model struct {
	settings models.Settings
	stats    models.Stats
	keys     KeyMap
	width    int
	height   int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(20)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			MarginTop(1)
)

func New(width, height int) Model {
	return Model{
		keys:   DefaultKeyMap(),
		width:  width,
		height: height,
	}
}

func (m *Model) SetSettings(settings models.Settings) {
	m.settings = settings
}

func (m *Model) SetStats(stats models.Stats) {
	m.stats = stats
}

func (m Model) Settings() models.Settings {
	return m.settings
}

func (m Model) Stats() models.Stats {
	return m.stats
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Toggle):
			return m, func() tea.Msg { return ToggleNotificationsMsg{} }
		case key.Matches(msg, m.keys.Clear):
			count := m.stats.TotalActivities
			return m, func() tea.Msg { return ClearAllMsg{Count: count} }
		}
	}
	return m, nil
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var sections []string

	prefsContent := fmt.Sprintf("%s %s", labelStyle.Render("Notifications:"), valueStyle.Render(onOff(m.settings.NotificationsEnabled)))
	sections = append(sections, sectionStyle.Render(titleStyle.Render("Preferences")+"\n"+prefsContent))

	statsContent := lipgloss.JoinVertical(
		lipgloss.Left,
		fmt.Sprintf("%s %s", labelStyle.Render("Total activities:"), valueStyle.Render(humanize.Comma(int64(m.stats.TotalActivities)))),
		fmt.Sprintf("%s %s", labelStyle.Render("Total duration:"),
			valueStyle.Render(fmt.Sprintf("%s minutes (%s hours)", humanize.Comma(int64(m.stats.TotalDurationMin)), humanize.Comma(int64(m.stats.Hours()))))),
	)
	sections = append(sections, sectionStyle.Render(titleStyle.Render("Statistics")+"\n"+statsContent))

	sections = append(sections, hintStyle.Render("Press 'n' to toggle notifications, 'c' to clear all data"))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 4).Render(content),
	)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
