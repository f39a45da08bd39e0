package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kezhick/Depooper/internal/engine"
)

func loadedModel(t *testing.T) boardModel {
	t.Helper()
	m := newBoardModel(context.Background(), nil, "main", 4)
	c := engine.NewCharacter(engine.WithRand(engine.NewRand(1)))
	next, cmd := m.Update(loadedMsg{char: c})
	require.Nil(t, cmd)
	return next.(boardModel)
}

func press(t *testing.T, m boardModel, key string) (boardModel, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(boardModel), cmd
}

func TestBoardLoads(t *testing.T) {
	m := loadedModel(t)
	assert.False(t, m.loading)
	assert.Contains(t, m.lastLog, "day 1")
	assert.Contains(t, m.View(), "Depooper")
}

func TestBoardActionFreezesInput(t *testing.T) {
	m := loadedModel(t)

	m, cmd := press(t, m, "c")
	require.NotNil(t, cmd)
	assert.True(t, m.busy)
	assert.NotEmpty(t, m.frozen)
	assert.Equal(t, m.frozen, m.View())

	m, cmd = press(t, m, "s")
	assert.Nil(t, cmd, "input is ignored while busy")

	next, _ := m.Update(actionMsg{lines: []string{"Drank coffee."}})
	m = next.(boardModel)
	assert.False(t, m.busy)
	assert.Equal(t, "Drank coffee.", m.lastLog)
}

func TestBoardHabitSelectionAndTravelMode(t *testing.T) {
	m := loadedModel(t)
	m, _ = press(t, m, "down")
	m, _ = press(t, m, "down")
	m, _ = press(t, m, "down")
	assert.Equal(t, len(engine.AllHabits)-1, m.selected)
	m, _ = press(t, m, "up")
	assert.Equal(t, len(engine.AllHabits)-2, m.selected)

	m, _ = press(t, m, "t")
	assert.Equal(t, engine.TravelBus, travelModes[m.travel])
	m, _ = press(t, m, "t")
	m, _ = press(t, m, "t")
	assert.Equal(t, engine.TravelWalk, travelModes[m.travel])
}

func TestBoardPendingEncounterCanBeDeclined(t *testing.T) {
	m := loadedModel(t)
	next, _ := m.Update(actionMsg{pending: &engine.Encounter{Kind: engine.EncounterDrunk, Message: "A drunk."}})
	m = next.(boardModel)
	assert.Contains(t, m.View(), "A drunk.")

	m, cmd := press(t, m, "c")
	assert.Nil(t, cmd, "only y/n are accepted during an encounter")
	m, cmd = press(t, m, "n")
	assert.Nil(t, cmd)
	assert.Nil(t, m.pending)
}

func TestBoardGameOverIgnoresActions(t *testing.T) {
	m := loadedModel(t)
	m.char.Health = 0
	_, cmd := press(t, m, "c")
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "GAME OVER")
}

func TestBoardMoneyAndCoffeeKeys(t *testing.T) {
	for _, key := range []string{"C", "P", "l", "L", "v", "B"} {
		t.Run(key, func(t *testing.T) {
			m := loadedModel(t)
			m, cmd := press(t, m, key)
			require.NotNil(t, cmd)
			assert.True(t, m.busy)
		})
	}
}

func TestBoardShowsLevelUp(t *testing.T) {
	m := loadedModel(t)
	next, _ := m.Update(actionMsg{lines: []string{"New level 2!"}, levelUp: true})
	m = next.(boardModel)
	assert.Contains(t, m.lastLog, "LEVEL UP")
	assert.Contains(t, m.lastLog, "New level 2!")
}

func TestBoardFooterListsMoneyKeys(t *testing.T) {
	m := loadedModel(t)
	assert.Contains(t, m.View(), "v repay")
	assert.Contains(t, m.View(), "B buy machine")
}
