package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreakFollowsDailyHabits(t *testing.T) {
	cases := []struct {
		name   string
		setup  func(c *Character)
		streak int
	}{
		{"clean day", func(c *Character) {}, 6},
		{"coffee", func(c *Character) { c.CoffeeCupsToday = 1 }, 0},
		{"cigarette", func(c *Character) { c.CigarettesToday = 1 }, 0},
		{"overeaten", func(c *Character) { c.OvereatenToday = true }, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCharacter(t, nil)
			c.WorkedToday = true
			c.GoalStreakDays = 5
			tc.setup(c)
			r := c.EndDay()
			assert.Equal(t, tc.streak, c.GoalStreakDays)
			assert.Equal(t, tc.streak, r.Streak)
		})
	}
}

func TestEndDayRollsToNextMorning(t *testing.T) {
	c := newTestCharacter(t, nil)
	c.TimeMinutes = 23 * 60
	c.CoffeeCupsToday = 3
	c.CaloriesToday = 2000
	c.WorkedToday = true

	r := c.EndDay()
	assert.Equal(t, 1, r.Day)
	assert.Equal(t, 1, c.DaysElapsed)
	assert.Equal(t, MorningMinute, c.TimeMinutes)
	assert.Zero(t, c.CoffeeCupsToday)
	assert.Zero(t, c.CaloriesToday)
	assert.False(t, c.WorkedToday)
	assert.True(t, c.BonusEligibleToday)
	assert.Empty(t, r.Failures)
}

func TestWeeklySettlementOnlyEverySeventhDay(t *testing.T) {
	c := newTestCharacter(t, nil)
	for day := 1; day <= 21; day++ {
		c.WorkedToday = true
		r := c.EndDay()
		if day%WeekDays == 0 {
			assert.Positive(t, r.WeeklyPayout, "day %d", day)
		} else {
			assert.Zero(t, r.WeeklyPayout, "day %d", day)
		}
	}
	assert.Equal(t, 3, c.WeeklyPayouts)
}

func TestWeeklyPayoutAmount(t *testing.T) {
	c := newTestCharacter(t, nil)
	c.DaysElapsed = 6
	c.WorkedToday = true
	c.ProductiveToday = true
	c.WageAccrued = 6 * 2000
	c.Charisma = 3
	c.Level = 2

	r := c.EndDay()
	want := 7*2000 + 500 + 7500 + 1500 + 200 + 50
	assert.Equal(t, want, r.WeeklyPayout)
	assert.Equal(t, 1000+want-1500, c.Rubles)
	assert.Zero(t, c.WageAccrued)
	assert.Zero(t, c.BonusAccrued)
}

func TestWeeklyLoanInterest(t *testing.T) {
	c := newTestCharacter(t, nil)
	c.LoanPrincipal = 1000
	c.LoanWeeklyInterestPct = 20
	c.DaysElapsed = 6
	c.WorkedToday = true

	r := c.EndDay()
	assert.Equal(t, 200, r.LoanInterest)
	assert.Equal(t, 1200, c.LoanPrincipal)
}

func TestLoanInterestRoundsUp(t *testing.T) {
	c := newTestCharacter(t, nil)
	c.LoanPrincipal = 1001
	assert.Equal(t, 201, c.LoanInterest())
}

func TestWeeklyMishap(t *testing.T) {
	// mishap roll, then the funeral
	c := newTestCharacter(t, &scriptedRand{floats: []float64{0.999, 0.1}, ints: []int{1}})
	c.DaysElapsed = 6
	c.WorkedToday = true
	r := c.EndDay()
	assert.Contains(t, r.Mishap, "2000")
	assert.Equal(t, 40, c.Morale)
}

func TestFiredAfterThirdMissedDay(t *testing.T) {
	c := newTestCharacter(t, nil)
	for i := 1; i <= 3; i++ {
		require.True(t, c.Employed, "missed day %d", i)
		r := c.EndDay()
		assert.True(t, r.Truant)
		assert.Equal(t, i, c.JobWarnings)
	}
	assert.False(t, c.Employed)
	assert.NotEmpty(t, c.FiredReason)
	assert.Equal(t, 1000-3*300, c.Rubles)

	// no more fines once unemployed
	r := c.EndDay()
	assert.False(t, r.Truant)
	assert.Equal(t, 100, c.Rubles)
}

func TestProductiveDayAccruesBonus(t *testing.T) {
	c := newTestCharacter(t, nil)
	c.WorkedToday = true
	c.ProductiveToday = true
	c.EndDay()
	assert.Equal(t, 2000, c.WageAccrued)
	assert.Equal(t, 500, c.BonusAccrued)

	c.WorkedToday = true
	c.ProductiveToday = true
	c.BonusEligibleToday = false
	c.EndDay()
	assert.Equal(t, 4000, c.WageAccrued)
	assert.Equal(t, 500, c.BonusAccrued)
}

func TestNightRegeneration(t *testing.T) {
	c := newTestCharacter(t, nil)
	c.WorkedToday = true
	r := c.EndDay()
	assert.False(t, r.HealthRegen, "overeater at 105 kg")
	assert.Equal(t, 100, c.Health)

	c.WorkedToday = true
	c.WeightKg = 70.0
	r = c.EndDay()
	assert.True(t, r.HealthRegen)
	assert.Equal(t, 105, c.Health)

	c.WorkedToday = true
	c.WeightKg = 90
	c.Habits[HabitOvereating].Active = false
	c.EndDay()
	assert.Equal(t, 110, c.Health)
}

func TestShortSleepAdjustsNeed(t *testing.T) {
	c := newTestCharacter(t, nil)
	c.WorkedToday = true
	c.Alertness = 10
	r := c.EndDay()
	assert.InDelta(t, 1.6, r.SleepHours, 1e-9)
	assert.InDelta(t, MinSleepNeed, c.SleepNeed, 1e-9)
}

func TestNegativeSleepHurtsHealth(t *testing.T) {
	c := newTestCharacter(t, nil)
	c.WorkedToday = true
	c.Alertness = 0
	c.OvereatenToday = true
	c.ApplyDifficulty(DifficultyHardcore)

	r := c.EndDay()
	assert.InDelta(t, -0.1, r.SleepHours, 1e-9)
	assert.Equal(t, 100, c.Health)

	c.WorkedToday = true
	c.Alertness = 0
	c.OvereatenToday = true
	c.OvereatingCost = 10
	c.Health = 20
	c.EndDay()
	assert.Zero(t, c.Health)
	assert.True(t, c.IsGameOver())
}

func TestNightBinge(t *testing.T) {
	c := newTestCharacter(t, &scriptedRand{floats: []float64{0.1}, ints: []int{100}})
	c.WorkedToday = true
	r := c.EndDay()
	assert.Equal(t, 500, r.NightBingeKcal)
	assert.Equal(t, 800, c.Rubles)
	assert.InDelta(t, 105+500/KcalPerKg, c.WeightKg, 1e-9)
}

func TestNightBingeNeedsOvereatHabit(t *testing.T) {
	c := newTestCharacter(t, &scriptedRand{floats: []float64{0.1}})
	c.WorkedToday = true
	c.Habits[HabitOvereating].Active = false
	r := c.EndDay()
	assert.Zero(t, r.NightBingeKcal)
	assert.Equal(t, 1000, c.Rubles)
}

func TestNightBingeProtection(t *testing.T) {
	c := newTestCharacter(t, &scriptedRand{floats: []float64{0.1}})
	c.WorkedToday = true
	c.NightBingeProtected = true
	r := c.EndDay()
	assert.Zero(t, r.NightBingeKcal)
	assert.False(t, c.NightBingeProtected)
}

func TestMainQuestCompletesOnce(t *testing.T) {
	c := newTestCharacter(t, nil)
	c.GoalStreakDays = 88
	c.WorkedToday = true
	c.EndDay()
	mq := c.Quests[QuestMain]
	assert.Equal(t, QuestInProgress, mq.Status)
	assert.Equal(t, 89, mq.Progress)

	c.WorkedToday = true
	c.EndDay()
	assert.Equal(t, QuestCompleted, c.Quests[QuestMain].Status)
	assert.Equal(t, 3000, c.Rubles)

	c.WorkedToday = true
	c.EndDay()
	assert.Equal(t, 3000, c.Rubles)
	assert.Equal(t, 91, c.Quests[QuestMain].Progress)

	// progress never drops after a relapse
	c.WorkedToday = true
	c.CoffeeCupsToday = 1
	c.EndDay()
	assert.Zero(t, c.GoalStreakDays)
	assert.Equal(t, 91, c.Quests[QuestMain].Progress)
	assert.Equal(t, 91, c.BestStreakDays)
}

func TestTruancyFloorsMoraleAtZero(t *testing.T) {
	c := newTestCharacter(t, nil)
	c.Morale = 3
	r := c.EndDay()
	require.True(t, r.Truant)
	assert.Zero(t, c.Morale)
}

func TestEncounterCooldownResetsOvernight(t *testing.T) {
	c := newTestCharacter(t, nil)
	c.WorkedToday = true
	c.TimeMinutes = LastMinute
	c.LastEncounterMinute = LastMinute
	require.False(t, c.EncounterAvailable())

	c.EndDay()
	assert.True(t, c.EncounterAvailable())
}
