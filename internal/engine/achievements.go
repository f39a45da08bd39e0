package engine

// Achievement is a badge derived from the character's state.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker calculates which achievements a character has earned.
// Nothing is stored; every badge is recomputed from state.
type AchievementChecker struct {
	c *Character
}

func NewAchievementChecker(c *Character) *AchievementChecker {
	return &AchievementChecker{c: c}
}

// GetAchievements returns all achievements with their earned status.
func (a *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		// Level milestones
		a.levelAchievement("level_2", "Warming Up", "Reach level 2", "🌱", 2),
		a.levelAchievement("level_5", "Getting There", "Reach level 5", "🌿", 5),
		a.levelAchievement("level_10", "Seasoned", "Reach level 10", "⭐", 10),

		// Habits
		a.habitAchievement("no_coffee", "Decaf", "Quit coffee", "☕", HabitCoffee),
		a.habitAchievement("no_smoking", "Fresh Air", "Quit smoking", "🚭", HabitSmoking),
		a.habitAchievement("no_overeating", "Portion Control", "Quit overeating", "🥗", HabitOvereating),
		a.allHabitsAchievement("early_bird", "Early Bird", "Quit all three habits", "🐦"),

		// Streaks
		a.streakAchievement("streak_7", "Clean Week", "A 7-day streak without habits", "📅", 7),
		a.streakAchievement("streak_30", "Clean Month", "A 30-day streak without habits", "🗓", 30),
		a.streakAchievement("streak_90", "New Person", "A 90-day streak without habits", "🏆", 90),

		// Money and work
		a.debtFreeAchievement("debt_free", "Debt Free", "Pay off a microloan", "💸"),
		a.payoutAchievement("employee_of_the_week", "Employee of the Week", "Receive a weekly payout", "💼"),
	}
}

// CountEarned returns how many achievements have been earned.
func (a *AchievementChecker) CountEarned() int {
	count := 0
	for _, ach := range a.GetAchievements() {
		if ach.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements.
func (a *AchievementChecker) CountTotal() int {
	return len(a.GetAchievements())
}

func (a *AchievementChecker) levelAchievement(id, name, desc, icon string, level int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: a.c.Level >= level}
}

func (a *AchievementChecker) habitAchievement(id, name, desc, icon string, h Habit) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: !a.c.HasHabit(h)}
}

func (a *AchievementChecker) allHabitsAchievement(id, name, desc, icon string) Achievement {
	earned := true
	for _, h := range AllHabits {
		if a.c.HasHabit(h) {
			earned = false
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (a *AchievementChecker) streakAchievement(id, name, desc, icon string, days int) Achievement {
	earned := max(a.c.BestStreakDays, a.c.GoalStreakDays) >= days
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (a *AchievementChecker) debtFreeAchievement(id, name, desc, icon string) Achievement {
	earned := a.c.LoansTaken > 0 && a.c.LoanPrincipal == 0
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (a *AchievementChecker) payoutAchievement(id, name, desc, icon string) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: a.c.WeeklyPayouts > 0}
}
