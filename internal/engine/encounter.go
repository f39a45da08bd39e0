package engine

import "fmt"

type EncounterKind string

const (
	EncounterNone    EncounterKind = ""
	EncounterDrunk   EncounterKind = "drunk"
	EncounterGopnik  EncounterKind = "gopnik"
	EncounterJanitor EncounterKind = "janitor"
)

var encounterKinds = []EncounterKind{EncounterDrunk, EncounterGopnik, EncounterJanitor}

func (k EncounterKind) IsValid() bool {
	switch k {
	case EncounterDrunk, EncounterGopnik, EncounterJanitor:
		return true
	default:
		return false
	}
}

// Encounter is the outcome of a street encounter.
type Encounter struct {
	Kind           EncounterKind
	Message        string
	Knockout       bool
	HealthDelta    int
	AlertnessDelta int
	// Smoked is set when an applied gopnik encounter ended in a cigarette.
	Smoked bool
}

// EncounterAvailable reports whether the encounter cooldown has elapsed.
func (c *Character) EncounterAvailable() bool {
	return c.TimeMinutes-c.LastEncounterMinute >= c.EncounterCooldownMin
}

// pick returns the normal or hardcore value.
func pick[T any](hardcore bool, normal, hard T) T {
	if hardcore {
		return hard
	}
	return normal
}

// RandomEncounter rolls (or forces) a street encounter. With apply=false the
// outcome is computed for preview and the character is not mutated.
func (c *Character) RandomEncounter(mode Difficulty, apply bool, forced EncounterKind) (Encounter, error) {
	if forced != EncounterNone && !forced.IsValid() {
		return Encounter{}, c.refuse(invalidAction("encounter", fmt.Sprintf("Unknown encounter %q.", forced)))
	}
	hard := mode == DifficultyHardcore
	r := c.random()

	kind := forced
	if kind == EncounterNone {
		kind = encounterKinds[r.IntN(len(encounterKinds))]
	}
	enc := Encounter{Kind: kind}

	switch kind {
	case EncounterDrunk:
		enc.HealthDelta = -pick(hard, 7, 12) - r.IntN(6)
		enc.AlertnessDelta = -pick(hard, 8, 12)
		enc.Message = fmt.Sprintf("A shady drunk latched onto you. Health %d, alertness %d.", enc.HealthDelta, enc.AlertnessDelta)
		if apply {
			c.addHealth(enc.HealthDelta)
			c.addAlertness(enc.AlertnessDelta)
			c.logEvent("Random encounter: " + enc.Message)
		}

	case EncounterGopnik:
		enc.HealthDelta = -pick(hard, 8, 15) - r.IntN(7)
		enc.AlertnessDelta = -pick(hard, 6, 10)
		enc.Knockout = r.Float64() < pick(hard, 0.15, 0.25)
		enc.Message = fmt.Sprintf("Gopniks picked a fight. Health %d, alertness %d.", enc.HealthDelta, enc.AlertnessDelta)
		if enc.Knockout {
			enc.Message = "You got knocked out. " + enc.Message
		}
		if apply {
			c.addHealth(enc.HealthDelta)
			c.addAlertness(enc.AlertnessDelta)
			if c.HasHabit(HabitSmoking) && r.Float64() < pick(hard, 0.35, 0.6) {
				enc.Smoked = c.Smoke() == nil
			} else {
				c.logEvent("Random encounter: " + enc.Message)
			}
		}

	case EncounterJanitor:
		if c.HasHabit(HabitSmoking) && r.Float64() < pick(hard, 0.3, 0.5) {
			enc.AlertnessDelta = -pick(hard, 4, 6)
			enc.Message = fmt.Sprintf("The janitor scolded you about cigarette butts. Alertness %d.", enc.AlertnessDelta)
			if apply {
				c.addAlertness(enc.AlertnessDelta)
			}
		} else {
			enc.HealthDelta = pick(hard, 5, 3)
			enc.Message = fmt.Sprintf("The janitor wished you a good morning. Health +%d.", enc.HealthDelta)
			if apply {
				c.addHealth(enc.HealthDelta)
			}
		}
		if apply {
			c.logEvent("Random encounter: " + enc.Message)
		}
	}

	if apply {
		c.LastEncounterMinute = c.TimeMinutes
		c.logger().Debug("encounter", "kind", string(kind), "health", enc.HealthDelta, "alertness", enc.AlertnessDelta)
	}
	return enc, nil
}

// BackgroundEncounterChance is the per-action chance of a street encounter.
func BackgroundEncounterChance(mode Difficulty) float64 {
	return pick(mode == DifficultyHardcore, 0.15, 0.25)
}

// MaybeBackgroundEncounter rolls for an encounter after an action and returns
// a preview when one happens. Nothing is applied.
func (c *Character) MaybeBackgroundEncounter() (Encounter, bool) {
	if !c.EncounterAvailable() {
		return Encounter{}, false
	}
	if c.random().Float64() >= BackgroundEncounterChance(c.Difficulty) {
		return Encounter{}, false
	}
	enc, err := c.RandomEncounter(c.Difficulty, false, EncounterNone)
	if err != nil {
		return Encounter{}, false
	}
	return enc, true
}
