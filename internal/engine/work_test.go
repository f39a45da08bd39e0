package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftEndsAfterAllChoices(t *testing.T) {
	// IntN defaults to 0: every event is a focus task
	c := newTestCharacter(t, nil)
	s, err := c.StartShift(3)
	require.NoError(t, err)
	assert.Equal(t, LocationWork, c.Location)
	assert.Equal(t, 10*60, c.TimeMinutes)
	assert.Equal(t, WorkFocusTask, s.Current.Kind)

	for i := 0; i < 3; i++ {
		require.False(t, s.Done())
		_, err := s.Choose(1)
		require.NoError(t, err)
	}
	require.True(t, s.Done())
	assert.Equal(t, 35, s.Summary.Focus)
	assert.Zero(t, s.Summary.Stress)
	assert.False(t, s.Summary.Productive)
	assert.Equal(t, 44, c.Alertness)
	assert.Equal(t, 102, c.Health)
	assert.True(t, c.WorkedToday)
	assert.Equal(t, 10*60+3*WorkEventMinutes, c.TimeMinutes)

	_, err = s.Choose(0)
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestProductiveShiftAdvancesQuest(t *testing.T) {
	c := newTestCharacter(t, &scriptedRand{floats: []float64{0, 0, 0}})
	s, err := c.StartShift(3)
	require.NoError(t, err)
	for !s.Done() {
		_, err := s.Choose(0)
		require.NoError(t, err)
	}
	assert.Equal(t, 74, s.Summary.Focus)
	assert.True(t, s.Summary.Productive)
	assert.Equal(t, 3, s.Summary.QuestsAdvanced)
	assert.True(t, c.ProductiveToday)
	assert.Equal(t, 105, c.Health)
	assert.Equal(t, QuestCompleted, c.Quests[QuestWorkReports].Status)
	assert.Equal(t, 1600, c.Rubles)

	r := c.EndDay()
	assert.False(t, r.Truant)
	assert.Equal(t, 2000, c.WageAccrued)
	assert.Equal(t, 500, c.BonusAccrued)
}

func TestFeatureWorkRevealsQuest(t *testing.T) {
	c := newTestCharacter(t, &scriptedRand{floats: []float64{0}, ints: []int{1}})
	s, err := c.StartShift(1)
	require.NoError(t, err)
	require.Equal(t, WorkFeatureTask, s.Current.Kind)
	_, err = s.Choose(1)
	require.NoError(t, err)
	q := c.Quests[QuestWorkFeatures]
	assert.Equal(t, QuestInProgress, q.Status)
	assert.Equal(t, 1, q.Progress)
}

func TestStartShiftRefusals(t *testing.T) {
	c := newTestCharacter(t, nil)
	c.TimeMinutes = 17 * 60
	_, err := c.StartShift(5)
	assert.ErrorIs(t, err, ErrPrecondition)

	c = newTestCharacter(t, nil)
	c.Employed = false
	_, err = c.StartShift(5)
	assert.ErrorIs(t, err, ErrPrecondition)

	c = newTestCharacter(t, nil)
	c.WorkedToday = true
	_, err = c.StartShift(5)
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestShiftInvalidChoice(t *testing.T) {
	c := newTestCharacter(t, nil)
	s, err := c.StartShift(1)
	require.NoError(t, err)
	_, err = s.Choose(2)
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Equal(t, 1, s.EventsLeft)
}
