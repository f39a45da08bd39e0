package engine

import (
	"fmt"
	"math"
)

const (
	KickMinAlertness = 60
	KickMinHealth    = 90

	KickChanceMin = 0.02
	KickChanceMax = 0.6

	// KickFailAlertness is the alertness cost of a failed attempt.
	KickFailAlertness = 10
)

var kickBaseChance = [habitCount]float64{
	HabitCoffee:     0.15,
	HabitSmoking:    0.10,
	HabitOvereating: 0.12,
}

// KickGateError explains why a cessation attempt is not allowed right now.
type KickGateError struct {
	Habit         Habit
	Reason        string
	DaysRemaining int
}

func (e KickGateError) Error() string {
	return fmt.Sprintf("cannot quit %s: %s", e.Habit, e.Reason)
}

// Unwrap ties gate refusals to the precondition category.
func (e KickGateError) Unwrap() error { return ErrPrecondition }

// DaysUntilKickAvailable is how many days remain on the habit's attempt cooldown.
func (c *Character) DaysUntilKickAvailable(h Habit) int {
	if !h.IsValid() {
		return 0
	}
	passed := c.DaysElapsed - c.Habits[h].LastAttemptDay
	return max(0, c.QuitCooldownDays-passed)
}

// CanAttemptKick checks eligibility for a cessation attempt. It returns nil
// only when the habit is active, unused today, alertness and health are at
// their thresholds and the cooldown has elapsed.
func (c *Character) CanAttemptKick(h Habit) error {
	if !h.IsValid() {
		return KickGateError{Habit: h, Reason: "unknown habit"}
	}
	if !c.HasHabit(h) {
		return KickGateError{Habit: h, Reason: "this habit is already beaten"}
	}
	if c.UsedToday(h) {
		return KickGateError{Habit: h, Reason: "already indulged today, try tomorrow"}
	}
	if c.Alertness < KickMinAlertness {
		return KickGateError{Habit: h, Reason: fmt.Sprintf("alertness too low (<%d), get some sleep", KickMinAlertness)}
	}
	if c.Health < KickMinHealth {
		return KickGateError{Habit: h, Reason: fmt.Sprintf("health too low (<%d), recover first", KickMinHealth)}
	}
	if days := c.DaysUntilKickAvailable(h); days > 0 {
		return KickGateError{Habit: h, Reason: fmt.Sprintf("next attempt in %d day(s)", days), DaysRemaining: days}
	}
	return nil
}

// KickChance is the success probability of a cessation attempt, clamped to
// [KickChanceMin, KickChanceMax].
func (c *Character) KickChance(h Habit) float64 {
	chance := 0.0
	if h.IsValid() {
		chance = kickBaseChance[h]
	}
	if c.Alertness >= 80 {
		chance += 0.05
	}
	if c.Health >= 140 {
		chance += 0.05
	}
	if c.GoalStreakDays >= 7 {
		chance += 0.07
	}
	if c.Difficulty == DifficultyHardcore {
		chance -= 0.05
	}
	return clampFloat(chance, KickChanceMin, KickChanceMax)
}

// AttemptKick tries to drop a habit for good. The cooldown is stamped on
// every eligible attempt; failure costs KickFailAlertness.
func (c *Character) AttemptKick(h Habit) (bool, error) {
	if err := c.CanAttemptKick(h); err != nil {
		c.logEvent(fmt.Sprintf("[%s] Not ready to quit %s: %s.", c.Name, h, err.(KickGateError).Reason))
		return false, err
	}

	chance := c.KickChance(h)
	roll := c.random().Float64()
	c.Habits[h].LastAttemptDay = c.DaysElapsed
	pct := int(math.Floor(chance * 100))

	if roll < chance {
		c.Habits[h].Active = false
		c.logEvent(fmt.Sprintf("[%s] Pulled it together and quit %s! (chance %d%%)", c.Name, h, pct))
		c.logger().Debug("habit cleared", "habit", h.String(), "chance", chance, "roll", roll)
		return true, nil
	}
	c.addAlertness(-KickFailAlertness)
	c.logEvent(fmt.Sprintf("[%s] Failed to quit %s (chance %d%%). Rest and try later.", c.Name, h, pct))
	return false, nil
}
