package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCommand(t *testing.T) {
	cmd, err := LookupCommand("cofee")
	require.NoError(t, err)
	assert.Equal(t, "coffee", cmd.Name)

	cmd, err = LookupCommand("nap")
	require.NoError(t, err)
	assert.Equal(t, "sleep", cmd.Name)

	_, err = LookupCommand("teleport")
	assert.ErrorIs(t, err, ErrUnrecognized)
}

func TestPerformReturnsNewEvents(t *testing.T) {
	c := newTestCharacter(t, nil)
	c.Events = []string{"old"}

	out, err := c.Perform("coffee")
	require.NoError(t, err)
	require.Len(t, out.Events, 1)
	assert.Contains(t, out.Events[0], "coffee")
	assert.Nil(t, out.Pending)
	assert.Equal(t, 1, c.CoffeeCupsToday)
}

func TestPerformParsesArguments(t *testing.T) {
	c := newTestCharacter(t, nil)

	_, err := c.Perform("travel", "gym", "bus")
	require.NoError(t, err)
	assert.Equal(t, LocationGym, c.Location)

	_, err = c.Perform("loan", "500")
	require.NoError(t, err)
	assert.Equal(t, 500, c.LoanPrincipal)

	_, err = c.Perform("loan", "lots")
	assert.ErrorIs(t, err, ErrInvalidAction)

	_, err = c.Perform("kick")
	assert.ErrorIs(t, err, ErrInvalidAction)

	_, err = c.Perform("eat", "pizza")
	assert.ErrorIs(t, err, ErrUnrecognized)
}

func TestPerformOffersBackgroundEncounter(t *testing.T) {
	// Coffee draws nothing; the encounter roll hits, then the kind is picked.
	c := newTestCharacter(t, &scriptedRand{floats: []float64{0.01}, ints: []int{2}})

	out, err := c.Perform("coffee")
	require.NoError(t, err)
	require.NotNil(t, out.Pending)
	assert.Equal(t, EncounterJanitor, out.Pending.Kind)
	assert.Equal(t, -10_000, c.LastEncounterMinute, "preview must not stamp the cooldown")

	applied, err := c.AcceptEncounter(*out.Pending)
	require.NoError(t, err)
	assert.Equal(t, EncounterJanitor, applied.Kind)
	assert.Equal(t, c.TimeMinutes, c.LastEncounterMinute)
}

func TestQuietCommandsSkipEncounters(t *testing.T) {
	c := newTestCharacter(t, &scriptedRand{floats: []float64{0.01}})
	out, err := c.Perform("dice", "20")
	require.NoError(t, err)
	assert.Nil(t, out.Pending)
}

func TestSleepRejectsOutOfRangeHours(t *testing.T) {
	for _, in := range []string{"NaN", "Inf", "-Inf", "1e20", "0", "-1", "24.5", "soon"} {
		t.Run(in, func(t *testing.T) {
			c := newTestCharacter(t, nil)
			_, err := c.Perform("sleep", in)
			require.ErrorIs(t, err, ErrInvalidAction)
			assert.Equal(t, 100, c.Health)
			assert.Equal(t, 50, c.Alertness)
			assert.Equal(t, MorningMinute, c.TimeMinutes)
			assert.False(t, c.IsGameOver())
		})
	}
}

func TestLoanCommandRejectsHugeAmounts(t *testing.T) {
	c := newTestCharacter(t, nil)
	_, err := c.Perform("loan", "9223372036854775000")
	require.ErrorIs(t, err, ErrInvalidAction)
	assert.Zero(t, c.LoanPrincipal)
	assert.Equal(t, 1000, c.Rubles)
}
