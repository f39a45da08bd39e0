package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	c := newTestCharacter(t, nil, WithName("Masha"), WithDifficulty(DifficultyHardcore))
	c.RunID = "run-1"
	c.Alertness = 77
	c.WeightKg = 98.25
	c.Location = LocationPark
	c.HasCoffeeMachine = true
	c.Habits[HabitSmoking] = HabitState{Active: false, LastAttemptDay: 4}
	c.Quests[QuestWorkFeatures].Status = QuestInProgress
	c.Quests[QuestWorkFeatures].Progress = 2
	c.FiredReason = "late, again"

	got, err := Restore(c.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, "Masha", got.Name)
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, DifficultyHardcore, got.Difficulty)
	assert.Equal(t, -12, got.SmokePenalty)
	assert.Equal(t, 77, got.Alertness)
	assert.Equal(t, 98.25, got.WeightKg)
	assert.Equal(t, LocationPark, got.Location)
	assert.True(t, got.HasCoffeeMachine)
	assert.Equal(t, c.Habits, got.Habits)
	assert.Equal(t, c.Quests, got.Quests)
	assert.Equal(t, "late, again", got.FiredReason)
	assert.Equal(t, c.Snapshot(), got.Snapshot())
}

func TestSnapshotCoversAllKeys(t *testing.T) {
	snap := newTestCharacter(t, nil).Snapshot()
	for _, k := range snapshotKeys() {
		assert.Contains(t, snap, k)
	}
	assert.Len(t, snap, len(snapshotKeys()))
}

func TestRestoreIgnoresUnknownAndDefaultsMissing(t *testing.T) {
	got, err := Restore(map[string]string{
		"health":         "150",
		"favourite_band": "Kino",
	})
	require.NoError(t, err)
	assert.Equal(t, 150, got.Health)
	assert.Equal(t, 50, got.Alertness)
	assert.Equal(t, DefaultName, got.Name)
	assert.True(t, got.HasHabit(HabitCoffee))
	assert.Equal(t, QuestHidden, got.Quests[QuestMain].Status)
}

func TestRestoreReportsMalformedValues(t *testing.T) {
	got, err := Restore(map[string]string{
		"alertness":           "lots",
		"health":              "150",
		"habit.coffee.active": "maybe",
		"quest.main.status":   "abandoned",
		"location":            "moon",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alertness")
	assert.Contains(t, err.Error(), "habit.coffee.active")
	assert.Contains(t, err.Error(), "quest.main.status")
	assert.Contains(t, err.Error(), "location")

	require.NotNil(t, got)
	assert.Equal(t, 150, got.Health)
	assert.Equal(t, 50, got.Alertness)
	assert.True(t, got.HasHabit(HabitCoffee))
	assert.Equal(t, LocationHome, got.Location)
}
