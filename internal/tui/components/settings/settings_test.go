package settings

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/fitlog/internal/models"
)

func TestViewShowsStats(t *testing.T) {
	m := New(80, 20)
	m.SetStats(models.Stats{TotalActivities: 1200, TotalDurationMin: 1471})
	m.SetSettings(models.Settings{NotificationsEnabled: true})

	view := m.View()
	assert.Contains(t, view, "1,200")
	assert.Contains(t, view, "1,471 minutes (24 hours)")
	assert.Contains(t, view, "On")
}

func TestViewNeedsSize(t *testing.T) {
	assert.Empty(t, New(0, 0).View())
}

func TestKeys(t *testing.T) {
	m := New(80, 20)
	m.SetStats(models.Stats{TotalActivities: 3})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if assert.NotNil(t, cmd) {
		assert.Equal(t, ToggleNotificationsMsg{}, cmd())
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if assert.NotNil(t, cmd) {
		assert.Equal(t, ClearAllMsg{Count: 3}, cmd())
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
}
