package engine

import (
	"errors"
	"fmt"
	"strconv"
)

// snapshotField maps one save key onto a Character field.
type snapshotField struct {
	key string
	get func(c *Character) string
	set func(c *Character, v string) error
}

func intField(key string, ptr func(c *Character) *int) snapshotField {
	return snapshotField{
		key: key,
		get: func(c *Character) string { return strconv.Itoa(*ptr(c)) },
		set: func(c *Character, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			*ptr(c) = n
			return nil
		},
	}
}

func floatField(key string, ptr func(c *Character) *float64) snapshotField {
	return snapshotField{
		key: key,
		get: func(c *Character) string { return strconv.FormatFloat(*ptr(c), 'f', -1, 64) },
		set: func(c *Character, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return err
			}
			*ptr(c) = f
			return nil
		},
	}
}

func boolField(key string, ptr func(c *Character) *bool) snapshotField {
	return snapshotField{
		key: key,
		get: func(c *Character) string { return strconv.FormatBool(*ptr(c)) },
		set: func(c *Character, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return err
			}
			*ptr(c) = b
			return nil
		},
	}
}

func stringField(key string, ptr func(c *Character) *string) snapshotField {
	return snapshotField{
		key: key,
		get: func(c *Character) string { return *ptr(c) },
		set: func(c *Character, v string) error {
			*ptr(c) = v
			return nil
		},
	}
}

// snapshotFields is ordered: difficulty comes before the tuning it presets.
var snapshotFields = buildSnapshotFields()

func buildSnapshotFields() []snapshotField {
	fields := []snapshotField{
		stringField("name", func(c *Character) *string { return &c.Name }),
		stringField("run_id", func(c *Character) *string { return &c.RunID }),
		{
			key: "difficulty",
			get: func(c *Character) string { return string(c.Difficulty) },
			set: func(c *Character, v string) error {
				d := Difficulty(v)
				if !d.IsValid() {
					return fmt.Errorf("unknown difficulty %q", v)
				}
				c.ApplyDifficulty(d)
				return nil
			},
		},
		intField("coffee_benefit", func(c *Character) *int { return &c.CoffeeBenefit }),
		intField("smoke_penalty", func(c *Character) *int { return &c.SmokePenalty }),
		floatField("overeating_cost", func(c *Character) *float64 { return &c.OvereatingCost }),

		intField("alertness", func(c *Character) *int { return &c.Alertness }),
		intField("health", func(c *Character) *int { return &c.Health }),
		floatField("weight_kg", func(c *Character) *float64 { return &c.WeightKg }),
		floatField("sleep_need", func(c *Character) *float64 { return &c.SleepNeed }),

		intField("coffee_cups_today", func(c *Character) *int { return &c.CoffeeCupsToday }),
		intField("cigarettes_today", func(c *Character) *int { return &c.CigarettesToday }),
		intField("calories_today", func(c *Character) *int { return &c.CaloriesToday }),
		boolField("overeaten_today", func(c *Character) *bool { return &c.OvereatenToday }),
		boolField("night_binge_protected", func(c *Character) *bool { return &c.NightBingeProtected }),

		intField("days_elapsed", func(c *Character) *int { return &c.DaysElapsed }),
		intField("goal_streak_days", func(c *Character) *int { return &c.GoalStreakDays }),
		intField("goal_days_target", func(c *Character) *int { return &c.GoalDaysTarget }),
		intField("quit_cooldown_days", func(c *Character) *int { return &c.QuitCooldownDays }),

		intField("time_minutes", func(c *Character) *int { return &c.TimeMinutes }),
		{
			key: "location",
			get: func(c *Character) string { return string(c.Location) },
			set: func(c *Character, v string) error {
				l := Location(v)
				if !l.IsValid() {
					return fmt.Errorf("unknown location %q", v)
				}
				c.Location = l
				return nil
			},
		},
		intField("encounter_cooldown_min", func(c *Character) *int { return &c.EncounterCooldownMin }),
		intField("last_encounter_minute", func(c *Character) *int { return &c.LastEncounterMinute }),

		intField("rubles", func(c *Character) *int { return &c.Rubles }),
		intField("loan_principal", func(c *Character) *int { return &c.LoanPrincipal }),
		intField("loan_weekly_interest_pct", func(c *Character) *int { return &c.LoanWeeklyInterestPct }),
		intField("utilities_weekly", func(c *Character) *int { return &c.UtilitiesWeekly }),
		boolField("has_coffee_machine", func(c *Character) *bool { return &c.HasCoffeeMachine }),

		boolField("employed", func(c *Character) *bool { return &c.Employed }),
		intField("daily_wage", func(c *Character) *int { return &c.DailyWage }),
		intField("wage_accrued", func(c *Character) *int { return &c.WageAccrued }),
		intField("bonus_accrued", func(c *Character) *int { return &c.BonusAccrued }),
		boolField("worked_today", func(c *Character) *bool { return &c.WorkedToday }),
		boolField("productive_today", func(c *Character) *bool { return &c.ProductiveToday }),
		boolField("bonus_eligible_today", func(c *Character) *bool { return &c.BonusEligibleToday }),
		intField("job_warnings", func(c *Character) *int { return &c.JobWarnings }),
		stringField("fired_reason", func(c *Character) *string { return &c.FiredReason }),

		intField("loans_taken", func(c *Character) *int { return &c.LoansTaken }),
		intField("weekly_payouts", func(c *Character) *int { return &c.WeeklyPayouts }),
		intField("best_streak_days", func(c *Character) *int { return &c.BestStreakDays }),

		intField("morale", func(c *Character) *int { return &c.Morale }),
		intField("strength", func(c *Character) *int { return &c.Strength }),
		intField("agility", func(c *Character) *int { return &c.Agility }),
		intField("intelligence", func(c *Character) *int { return &c.Intelligence }),
		intField("charisma", func(c *Character) *int { return &c.Charisma }),
		intField("level", func(c *Character) *int { return &c.Level }),
		intField("xp", func(c *Character) *int { return &c.XP }),
	}

	for _, h := range AllHabits {
		prefix := "habit." + h.String() + "."
		fields = append(fields,
			boolField(prefix+"active", func(c *Character) *bool { return &c.Habits[h].Active }),
			intField(prefix+"last_attempt_day", func(c *Character) *int { return &c.Habits[h].LastAttemptDay }),
		)
	}

	for _, id := range AllQuests {
		prefix := "quest." + id.Key() + "."
		fields = append(fields,
			snapshotField{
				key: prefix + "status",
				get: func(c *Character) string { return string(c.Quests[id].Status) },
				set: func(c *Character, v string) error {
					s := QuestStatus(v)
					if !s.IsValid() {
						return fmt.Errorf("unknown quest status %q", v)
					}
					c.Quests[id].Status = s
					return nil
				},
			},
			intField(prefix+"progress", func(c *Character) *int { return &c.Quests[id].Progress }),
			intField(prefix+"target", func(c *Character) *int { return &c.Quests[id].Target }),
		)
	}
	return fields
}

// snapshotKeys lists every key Snapshot writes, in a stable order.
func snapshotKeys() []string {
	keys := make([]string, len(snapshotFields))
	for i, f := range snapshotFields {
		keys[i] = f.key
	}
	return keys
}

// Snapshot flattens the persistent state into string key/value pairs.
// The event log is persisted separately and is not included.
func (c *Character) Snapshot() map[string]string {
	m := make(map[string]string, len(snapshotFields))
	for _, f := range snapshotFields {
		m[f.key] = f.get(c)
	}
	return m
}

// Restore builds a character from a snapshot. Known keys are copied onto a
// fresh default character; unknown keys are ignored and missing keys keep
// their defaults. Malformed values are skipped and reported together in the
// returned error, alongside the otherwise restored character.
func Restore(m map[string]string, opts ...Option) (*Character, error) {
	c := NewCharacter(opts...)
	var errs []error
	for _, f := range snapshotFields {
		v, ok := m[f.key]
		if !ok {
			continue
		}
		if err := f.set(c, v); err != nil {
			errs = append(errs, fmt.Errorf("restore %s: %w", f.key, err))
		}
	}
	return c, errors.Join(errs...)
}
