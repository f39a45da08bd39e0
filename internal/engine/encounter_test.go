package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncounterPreviewDoesNotMutate(t *testing.T) {
	c := newTestCharacter(t, &scriptedRand{ints: []int{1, 3}, floats: []float64{0.1}})
	before := c.Snapshot()
	events := len(c.Events)

	enc, err := c.RandomEncounter(DifficultyNormal, false, EncounterNone)
	require.NoError(t, err)
	assert.Equal(t, EncounterGopnik, enc.Kind)
	assert.Equal(t, -11, enc.HealthDelta)
	assert.True(t, enc.Knockout)
	assert.Equal(t, before, c.Snapshot())
	assert.Len(t, c.Events, events)
}

func TestDrunkEncounterApplied(t *testing.T) {
	c := newTestCharacter(t, &scriptedRand{ints: []int{5}})
	c.TimeMinutes = 600

	enc, err := c.RandomEncounter(DifficultyHardcore, true, EncounterDrunk)
	require.NoError(t, err)
	assert.Equal(t, -17, enc.HealthDelta)
	assert.Equal(t, 83, c.Health)
	assert.Equal(t, 38, c.Alertness)
	assert.Equal(t, 600, c.LastEncounterMinute)
	assert.False(t, c.EncounterAvailable())

	c.AdvanceTime(45)
	assert.True(t, c.EncounterAvailable())
}

func TestGopnikCanForceACigarette(t *testing.T) {
	// knockout roll, then the cigarette roll
	c := newTestCharacter(t, &scriptedRand{floats: []float64{0.9, 0.1}})
	enc, err := c.RandomEncounter(DifficultyNormal, true, EncounterGopnik)
	require.NoError(t, err)
	assert.True(t, enc.Smoked)
	assert.Equal(t, 1, c.CigarettesToday)
}

func TestJanitorEncounter(t *testing.T) {
	c := newTestCharacter(t, &scriptedRand{floats: []float64{0.1}})
	enc, err := c.RandomEncounter(DifficultyNormal, true, EncounterJanitor)
	require.NoError(t, err)
	assert.Equal(t, -4, enc.AlertnessDelta)
	assert.Equal(t, 46, c.Alertness)

	c = newTestCharacter(t, nil)
	c.Habits[HabitSmoking].Active = false
	enc, err = c.RandomEncounter(DifficultyNormal, true, EncounterJanitor)
	require.NoError(t, err)
	assert.Equal(t, 5, enc.HealthDelta)
	assert.Equal(t, 105, c.Health)
}

func TestUnknownEncounter(t *testing.T) {
	c := newTestCharacter(t, nil)
	_, err := c.RandomEncounter(DifficultyNormal, true, EncounterKind("bear"))
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestBackgroundEncounter(t *testing.T) {
	c := newTestCharacter(t, &scriptedRand{floats: []float64{0.1}, ints: []int{0}})
	enc, ok := c.MaybeBackgroundEncounter()
	require.True(t, ok)
	assert.Equal(t, EncounterDrunk, enc.Kind)
	assert.Equal(t, 100, c.Health, "background encounters are previews")

	c = newTestCharacter(t, &scriptedRand{floats: []float64{0.2}})
	_, ok = c.MaybeBackgroundEncounter()
	assert.False(t, ok)

	c.LastEncounterMinute = c.TimeMinutes
	_, ok = c.MaybeBackgroundEncounter()
	assert.False(t, ok)
}
