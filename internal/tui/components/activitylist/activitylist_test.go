package activitylist

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/fitlog/internal/models"
)

func press(m Model, s string) (Model, tea.Msg) {
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	if cmd == nil {
		return m, nil
	}
	return m, cmd()
}

func TestEmptyListHint(t *testing.T) {
	m := New(nil, 80, 20)
	assert.Contains(t, m.View(), "No activities yet.")

	_, ok := m.Selected()
	assert.False(t, ok)

	_, msg := press(m, "d")
	assert.Nil(t, msg, "delete without a selection should do nothing")
}

func TestKeysEmitMessages(t *testing.T) {
	a := models.Activity{ID: 7, Name: "Running", DurationMin: 95, Date: "2024-06-01"}
	m := New([]models.Activity{a}, 80, 20)

	_, msg := press(m, "a")
	assert.Equal(t, AddActivityMsg{}, msg)

	_, msg = press(m, "r")
	assert.Equal(t, RefreshMsg{}, msg)

	_, msg = press(m, "e")
	assert.Equal(t, EditActivityMsg{Activity: a}, msg)

	_, msg = press(m, "d")
	assert.Equal(t, DeleteActivityMsg{Activity: a}, msg)
}

func TestSetActivitiesReplacesRows(t *testing.T) {
	m := New([]models.Activity{{ID: 1, Name: "Old", DurationMin: 10, Date: "2024-06-01"}}, 80, 20)
	m.SetActivities([]models.Activity{
		{ID: 2, Name: "Yoga", DurationMin: 45, Date: "2024-06-03"},
		{ID: 3, Name: "Swim", DurationMin: 30, Date: "2024-06-02"},
	})

	require.Equal(t, 2, m.Len())
	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(2), selected.ID)
}

func TestItemDescription(t *testing.T) {
	i := Item{Activity: models.Activity{Name: "Rowing", DurationMin: 95, Date: "2024-06-01"}}
	assert.Equal(t, "Rowing", i.Title())
	assert.Equal(t, "1h 35m | 2024-06-01", i.Description())
	assert.Equal(t, "Rowing", i.FilterValue())
}
