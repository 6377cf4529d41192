package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/fitlog/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateDashboard:
		content = docStyle.Render(m.activityList.View())
	case constants.StateSettings:
		content = m.settingsModel.View()
	case constants.StateAdd:
		content = docStyle.Render(formTitleStyle.Render("New activity") + "\n" + m.form.View())
	case constants.StateEditing:
		content = docStyle.Render(formTitleStyle.Render("Edit activity") + "\n" + m.form.View())
	case constants.StateConfirmation:
		content = m.viewConfirmation()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if active == constants.StateConfirmation {
		active = m.previousState
	}

	var tabs []string
	for _, tab := range []struct {
		title string
		state constants.SessionState
	}{
		{"Activities", constants.StateDashboard},
		{"Add", constants.StateAdd},
		{"Settings", constants.StateSettings},
	} {
		on := active == tab.state || (tab.state == constants.StateAdd && active == constants.StateEditing)
		if on {
			tabs = append(tabs, activeTabStyle.Render(tab.title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tab.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmation() string {
	if m.confirmForm == nil {
		return ""
	}
	return lipgloss.Place(m.width, m.contentHeight(),
		lipgloss.Center, lipgloss.Center,
		m.confirmForm.View(),
	)
}

func (m Model) viewStatus() string {
	if m.formError != "" {
		return dangerStyle.Render("  " + m.formError)
	}
	if m.status != "" {
		return statusStyle.Render("  " + m.status)
	}
	return ""
}
