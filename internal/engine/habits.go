package engine

import "fmt"

type Habit int

const (
	HabitCoffee Habit = iota
	HabitSmoking
	HabitOvereating

	habitCount
)

// AllHabits lists habits in display order.
var AllHabits = []Habit{HabitCoffee, HabitSmoking, HabitOvereating}

func (h Habit) IsValid() bool {
	return h >= HabitCoffee && h < habitCount
}

func (h Habit) String() string {
	switch h {
	case HabitCoffee:
		return "coffee"
	case HabitSmoking:
		return "smoking"
	case HabitOvereating:
		return "overeating"
	default:
		return fmt.Sprintf("habit(%d)", int(h))
	}
}

// NoQuitAttempt is the sentinel LastAttemptDay before any attempt was made.
const NoQuitAttempt = -999

// HabitState is the per-habit slot of the habit table.
type HabitState struct {
	Active         bool
	LastAttemptDay int
}

// HabitTable maps each Habit to its state.
type HabitTable [habitCount]HabitState

func defaultHabits() HabitTable {
	var t HabitTable
	for i := range t {
		t[i] = HabitState{Active: true, LastAttemptDay: NoQuitAttempt}
	}
	return t
}

// HabitPhase is the cessation state of a single habit.
type HabitPhase string

const (
	PhaseActive      HabitPhase = "active"
	PhaseAttemptable HabitPhase = "attemptable"
	PhaseOnCooldown  HabitPhase = "cooldown"
	PhaseCleared     HabitPhase = "cleared"
)

// HasHabit reports whether the habit is still active.
func (c *Character) HasHabit(h Habit) bool {
	if !h.IsValid() {
		return false
	}
	return c.Habits[h].Active
}

// UsedToday reports whether the habit was indulged during the current day.
func (c *Character) UsedToday(h Habit) bool {
	switch h {
	case HabitCoffee:
		return c.CoffeeCupsToday > 0
	case HabitSmoking:
		return c.CigarettesToday > 0
	case HabitOvereating:
		return c.OvereatenToday
	default:
		return false
	}
}

// HabitPhase derives the cessation state machine position for h.
func (c *Character) HabitPhase(h Habit) HabitPhase {
	if !c.HasHabit(h) {
		return PhaseCleared
	}
	if c.DaysUntilKickAvailable(h) > 0 {
		return PhaseOnCooldown
	}
	if err := c.CanAttemptKick(h); err == nil {
		return PhaseAttemptable
	}
	return PhaseActive
}
