package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func earnedIDs(c *Character) []string {
	var ids []string
	for _, a := range NewAchievementChecker(c).GetAchievements() {
		if a.Earned {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

func TestNewCharacterHasNoAchievements(t *testing.T) {
	c := newTestCharacter(t, nil)
	ch := NewAchievementChecker(c)
	assert.Zero(t, ch.CountEarned())
	assert.Equal(t, 12, ch.CountTotal())
}

func TestAchievementsFromState(t *testing.T) {
	c := newTestCharacter(t, nil)
	c.Level = 5
	c.BestStreakDays = 30
	c.WeeklyPayouts = 1
	for _, h := range AllHabits {
		c.Habits[h].Active = false
	}

	assert.ElementsMatch(t, []string{
		"level_2", "level_5",
		"no_coffee", "no_smoking", "no_overeating", "early_bird",
		"streak_7", "streak_30",
		"employee_of_the_week",
	}, earnedIDs(c))
}

func TestDebtFreeNeedsALoan(t *testing.T) {
	c := newTestCharacter(t, nil)
	assert.NotContains(t, earnedIDs(c), "debt_free")

	c.LoansTaken = 1
	c.LoanPrincipal = 300
	assert.NotContains(t, earnedIDs(c), "debt_free")

	c.LoanPrincipal = 0
	assert.Contains(t, earnedIDs(c), "debt_free")
}
