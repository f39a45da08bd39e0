package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkMinutes(t *testing.T) {
	cases := []struct {
		agility int
		weight  float64
		want    int
	}{
		{1, 105, 28},
		{1, 110, 31},
		{1, 90, 25},
		{4, 90, 19},
		{20, 90, 1},
	}
	for _, tc := range cases {
		c := newTestCharacter(t, nil)
		c.Agility = tc.agility
		c.WeightKg = tc.weight
		assert.Equal(t, tc.want, c.TravelMinutes(TravelWalk, walkBaseMinutes), "agility %d weight %.0f", tc.agility, tc.weight)
	}
	c := newTestCharacter(t, nil)
	c.Agility = 10
	assert.Equal(t, 10, c.TravelMinutes(TravelBus, 10))
}

func TestTravel(t *testing.T) {
	c := newTestCharacter(t, nil)

	require.NoError(t, c.Travel(LocationGym, TravelWalk))
	assert.Equal(t, LocationGym, c.Location)
	assert.Equal(t, MorningMinute+28, c.TimeMinutes)
	assert.InDelta(t, 104.98, c.WeightKg, 1e-9)

	require.NoError(t, c.Travel(LocationWork, TravelBus))
	assert.Equal(t, 960, c.Rubles)

	require.NoError(t, c.Travel(LocationHome, TravelTaxi))
	assert.Equal(t, 800, c.Rubles)
	assert.Equal(t, MorningMinute+28+10+7, c.TimeMinutes)
}

func TestTravelRefusals(t *testing.T) {
	c := newTestCharacter(t, nil)
	assert.ErrorIs(t, c.Travel(LocationHome, TravelWalk), ErrInvalidAction)
	assert.ErrorIs(t, c.Travel(Location("moon"), TravelWalk), ErrInvalidAction)
	assert.ErrorIs(t, c.Travel(LocationPark, TravelMode("rocket")), ErrInvalidAction)
	assert.Equal(t, LocationHome, c.Location)
	assert.Equal(t, MorningMinute, c.TimeMinutes)
}
