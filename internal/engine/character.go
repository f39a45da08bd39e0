package engine

import (
	"fmt"
	"log/slog"
	"math"
)

const (
	MaxAlertness = 100
	MaxHealth    = 200
	MaxMorale    = 100
	MinWeightKg  = 40.0
	MinSleepNeed = 4.0
	MaxSleepNeed = 12.0

	// GameOverWeightKg ends the run once exceeded.
	GameOverWeightKg = 120.0

	MorningMinute = 8 * 60
	LastMinute    = 23*60 + 59

	DefaultName = "Artem"
)

// Character is the whole mutable state of one playthrough.
type Character struct {
	Name       string
	RunID      string
	Difficulty Difficulty

	Alertness int
	Health    int
	WeightKg  float64
	SleepNeed float64

	// Tuning set by ApplyDifficulty.
	CoffeeBenefit  int
	SmokePenalty   int
	OvereatingCost float64

	Habits HabitTable

	CoffeeCupsToday     int
	CigarettesToday     int
	CaloriesToday       int
	OvereatenToday      bool
	NightBingeProtected bool

	DaysElapsed      int
	GoalStreakDays   int
	GoalDaysTarget   int
	QuitCooldownDays int

	TimeMinutes int
	Location    Location

	EncounterCooldownMin int
	LastEncounterMinute  int

	Rubles                int
	LoanPrincipal         int
	LoanWeeklyInterestPct int
	UtilitiesWeekly       int
	HasCoffeeMachine      bool

	Employed           bool
	DailyWage          int
	WageAccrued        int
	BonusAccrued       int
	WorkedToday        bool
	ProductiveToday    bool
	BonusEligibleToday bool
	JobWarnings        int
	FiredReason        string

	// Lifetime markers used by achievements.
	LoansTaken     int
	WeeklyPayouts  int
	BestStreakDays int

	Morale       int
	Strength     int
	Agility      int
	Intelligence int
	Charisma     int
	Level        int
	XP           int

	Quests QuestBook
	Events []string

	rng Rand
	log *slog.Logger

	// persisted counts the leading events already written to storage.
	persisted int
}

// Option customises a new Character.
type Option func(*Character)

func WithRand(r Rand) Option {
	return func(c *Character) { c.rng = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Character) { c.log = l }
}

func WithName(name string) Option {
	return func(c *Character) {
		if name != "" {
			c.Name = name
		}
	}
}

func WithDifficulty(d Difficulty) Option {
	return func(c *Character) {
		if d.IsValid() {
			c.ApplyDifficulty(d)
		}
	}
}

// NewCharacter returns a character with the game-start defaults.
func NewCharacter(opts ...Option) *Character {
	c := &Character{
		Name:      DefaultName,
		Alertness: 50,
		Health:    100,
		WeightKg:  105.0,
		SleepNeed: 8.0,

		Habits: defaultHabits(),

		GoalDaysTarget:   90,
		QuitCooldownDays: 7,

		TimeMinutes: MorningMinute,
		Location:    LocationHome,

		EncounterCooldownMin: 45,
		LastEncounterMinute:  -10_000,

		Rubles:                1000,
		LoanWeeklyInterestPct: 20,
		UtilitiesWeekly:       1500,

		Employed:           true,
		DailyWage:          2000,
		BonusEligibleToday: true,

		Morale:       50,
		Strength:     1,
		Agility:      1,
		Intelligence: 1,
		Charisma:     1,
		Level:        1,

		Quests: defaultQuests(),
	}
	c.ApplyDifficulty(DefaultDifficulty)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Character) random() Rand {
	if c.rng == nil {
		c.rng = NewRand(0)
	}
	return c.rng
}

func (c *Character) logger() *slog.Logger {
	if c.log == nil {
		return slog.Default()
	}
	return c.log
}

func (c *Character) logEvent(msg string) {
	c.Events = append(c.Events, msg)
}

// RecentEvents returns at most n trailing log entries.
func (c *Character) RecentEvents(n int) []string {
	if n <= 0 || n >= len(c.Events) {
		return c.Events
	}
	return c.Events[len(c.Events)-n:]
}

// Day is the 1-based number of the current day.
func (c *Character) Day() int { return c.DaysElapsed + 1 }

// ApplyDifficulty sets the tuning preset for the mode.
func (c *Character) ApplyDifficulty(d Difficulty) {
	if !d.IsValid() {
		d = DefaultDifficulty
	}
	c.Difficulty = d
	if d == DifficultyHardcore {
		c.CoffeeBenefit = 6
		c.SmokePenalty = -12
		c.OvereatingCost = 0.6
		return
	}
	c.CoffeeBenefit = 10
	c.SmokePenalty = -7
	c.OvereatingCost = 0.3
}

// IsGameOver reports the terminal gameplay condition.
func (c *Character) IsGameOver() bool {
	return c.Health <= 0 || c.WeightKg > GameOverWeightKg
}

// AdvanceTime moves the clock forward, pinned to the current day.
func (c *Character) AdvanceTime(minutes int) {
	if minutes < 0 {
		minutes = 0
	}
	c.TimeMinutes = clampInt(c.TimeMinutes+minutes, 0, LastMinute)
}

// Clock formats the time of day as HH:MM.
func (c *Character) Clock() string {
	return fmt.Sprintf("%02d:%02d", (c.TimeMinutes/60)%24, c.TimeMinutes%60)
}

func (c *Character) addAlertness(delta int) {
	c.Alertness = clampInt(c.Alertness+delta, 0, MaxAlertness)
}

func (c *Character) addHealth(delta int) {
	c.Health = clampInt(c.Health+delta, 0, MaxHealth)
}

func (c *Character) addWeight(deltaKg float64) {
	c.WeightKg = math.Max(MinWeightKg, c.WeightKg+deltaKg)
}

func (c *Character) setSleepNeed(hours float64) {
	c.SleepNeed = clampFloat(hours, MinSleepNeed, MaxSleepNeed)
}

// ChangeMorale shifts morale within [0, 100].
func (c *Character) ChangeMorale(delta int) {
	c.Morale = clampInt(c.Morale+delta, 0, MaxMorale)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
