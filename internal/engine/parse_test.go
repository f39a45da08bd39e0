package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHabit(t *testing.T) {
	cases := map[string]Habit{
		"coffee":     HabitCoffee,
		" Coffee ":   HabitCoffee,
		"cofee":      HabitCoffee,
		"smok":       HabitSmoking,
		"cigarettes": HabitSmoking,
		"overeat":    HabitOvereating,
		"ov":         HabitOvereating,
	}
	for in, want := range cases {
		got, err := ParseHabit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "xyz", "tea-leaves"} {
		_, err := ParseHabit(in)
		assert.ErrorIs(t, err, ErrUnrecognized, in)
	}
}

func TestParseShortPrefix(t *testing.T) {
	// one letter is too short for a prefix match
	_, err := ParseFood("s")
	assert.ErrorIs(t, err, ErrUnrecognized)

	got, err := ParseFood("su")
	require.NoError(t, err)
	assert.Equal(t, FoodSuper, got)
}

func TestParseOthers(t *testing.T) {
	q, err := ParseCoffeeQuality("premum")
	require.NoError(t, err)
	assert.Equal(t, CoffeePremium, q)

	l, err := ParseLocation("offise")
	require.NoError(t, err)
	assert.Equal(t, LocationWork, l)

	m, err := ParseTravelMode("cab")
	require.NoError(t, err)
	assert.Equal(t, TravelTaxi, m)

	d, err := ParseDifficulty("HARDCORE")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHardcore, d)

	d, err = ParseDifficulty("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDifficulty, d)

	_, err = ParseDifficulty("easy")
	assert.ErrorIs(t, err, ErrUnrecognized)
}
