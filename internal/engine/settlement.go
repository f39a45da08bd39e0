package engine

import (
	"fmt"
	"math"
)

const (
	lowAlertnessSleep = 30
	minSleepHours     = 0.5
	nominalSleepHours = 8.0

	// regenTargetWeightKg is the only weight at which an overeater still
	// regenerates overnight.
	regenTargetWeightKg = 70.0
	nightRegenHealth    = 5

	productivityBonus = 500
	truancyFine       = 300
	truancyMorale     = -6
	maxJobWarnings    = 3
	FiredForTruancy   = "Repeated absences and late arrivals"

	nightBingeChance      = 0.2
	nightBingeHeavyChance = 0.1
	nightBingeHeavyKcal   = 3000
	nightBingeMinKcal     = 400
	nightBingeMaxKcal     = 1200
	nightBingeCost        = 200

	WeekDays         = 7
	weeklyFixedPay   = 7500
	weeklyFixedBonus = 1500
	charismaPayBonus = 100
	levelPayBonus    = 50
	weeklyMishapOdds = 0.15
)

type weeklyMishap struct {
	cost   int
	morale int
	text   string
}

var weeklyMishaps = []weeklyMishap{
	{cost: 3500, text: "Surprise: your phone broke. Repair −%d ₽."},
	{cost: 2000, morale: -10, text: "A death in the family. Expenses −%d ₽, morale −10."},
	{cost: 5000, morale: 6, text: "A relative's wedding. Gifts −%d ₽, morale +6."},
}

// SettlementReport summarises one end-of-day pass.
type SettlementReport struct {
	Day            int
	SleepHours     float64
	HealthRegen    bool
	SuccessfulDay  bool
	Streak         int
	Truant         bool
	Fired          bool
	NightBingeKcal int
	WeeklyPayout   int
	LoanInterest   int
	Mishap         string
	GameOver       bool

	// Failures are secondary updates that went wrong without stopping the day.
	Failures []error
}

func (r *SettlementReport) fail(step string, err error) {
	r.Failures = append(r.Failures, fmt.Errorf("%s: %w", step, err))
}

// EndDay runs the end-of-day settlement and rolls the clock to the next morning.
func (c *Character) EndDay() SettlementReport {
	report := SettlementReport{Day: c.Day()}

	sleep := c.nightSleepHours()
	report.SleepHours = sleep

	if c.CoffeeCupsToday == 0 && c.CigarettesToday == 0 &&
		(!c.HasHabit(HabitOvereating) || c.WeightKg == regenTargetWeightKg) {
		c.addHealth(nightRegenHealth)
		report.HealthRegen = true
	}

	c.settleStreak(&report)
	c.settleJob(&report)

	if sleep < 0 {
		c.addHealth(-int(math.Abs(sleep) * 5))
	} else {
		c.setSleepNeed(c.SleepNeed + (sleep - nominalSleepHours))
	}

	report.NightBingeKcal = c.nightBinge()

	c.DaysElapsed++
	c.TimeMinutes = MorningMinute
	// The encounter cooldown does not carry over midnight.
	c.LastEncounterMinute = MorningMinute - c.EncounterCooldownMin
	c.WorkedToday = false
	c.ProductiveToday = false
	c.BonusEligibleToday = true
	c.resetDailyCounters()

	if c.DaysElapsed%WeekDays == 0 {
		c.settleWeek(&report)
	}

	report.GameOver = c.IsGameOver()
	for _, err := range report.Failures {
		c.logger().Warn("settlement step failed", "day", report.Day, "err", err)
	}
	c.logger().Debug("day settled",
		"day", report.Day,
		"sleep_hours", report.SleepHours,
		"streak", report.Streak,
		"rubles", c.Rubles,
		"game_over", report.GameOver)
	return report
}

func (c *Character) nightSleepHours() float64 {
	hours := c.SleepNeed
	if c.Alertness < lowAlertnessSleep {
		hours = math.Max(minSleepHours, c.SleepNeed*float64(c.Alertness)/50)
	}
	if c.OvereatenToday {
		hours -= c.OvereatingCost
	}
	return hours
}

func (c *Character) settleStreak(report *SettlementReport) {
	report.SuccessfulDay = c.CoffeeCupsToday == 0 && c.CigarettesToday == 0 && !c.OvereatenToday
	if report.SuccessfulDay {
		c.GoalStreakDays++
	} else {
		c.GoalStreakDays = 0
	}
	c.BestStreakDays = max(c.BestStreakDays, c.GoalStreakDays)
	report.Streak = c.GoalStreakDays

	mq := &c.Quests[QuestMain]
	if c.GoalStreakDays >= 1 {
		if err := c.RevealQuest(QuestMain); err != nil {
			report.fail("reveal main quest", err)
		}
	}
	mq.Progress = max(mq.Progress, c.GoalStreakDays)
	if mq.Status != QuestCompleted && c.GoalStreakDays >= mq.Target {
		if err := c.CompleteQuest(QuestMain); err != nil {
			report.fail("complete main quest", err)
		}
	}
}

func (c *Character) settleJob(report *SettlementReport) {
	if !c.Employed {
		return
	}
	if c.WorkedToday {
		c.WageAccrued += c.DailyWage
		if c.ProductiveToday && c.BonusEligibleToday {
			c.BonusAccrued += productivityBonus
		}
		return
	}
	report.Truant = true
	c.JobWarnings++
	c.ChangeMoney(-truancyFine)
	c.ChangeMorale(truancyMorale)
	c.logEvent(fmt.Sprintf("Skipped work. Warning #%d. Fine %d ₽ and morale %d.", c.JobWarnings, truancyFine, truancyMorale))
	if c.JobWarnings >= maxJobWarnings {
		c.Employed = false
		c.FiredReason = FiredForTruancy
		report.Fired = true
		c.logEvent("You were fired for repeated violations.")
	}
}

// nightBinge rolls the late-night raid on the fridge and returns the calories eaten.
func (c *Character) nightBinge() int {
	if c.NightBingeProtected {
		return 0
	}
	chance := nightBingeChance
	if c.CaloriesToday > nightBingeHeavyKcal {
		chance += nightBingeHeavyChance
	}
	if c.random().Float64() >= chance || !c.HasHabit(HabitOvereating) {
		return 0
	}
	kcal := randRange(c.random(), nightBingeMinKcal, nightBingeMaxKcal)
	c.CaloriesToday += kcal
	c.addWeight(float64(kcal) / KcalPerKg)
	c.ChangeMoney(-nightBingeCost)
	c.OvereatenToday = true
	c.logEvent(fmt.Sprintf("Night binge: %d kcal. Weight is now %.1f kg.", kcal, c.WeightKg))
	return kcal
}

func (c *Character) resetDailyCounters() {
	c.CoffeeCupsToday = 0
	c.CigarettesToday = 0
	c.CaloriesToday = 0
	c.OvereatenToday = false
	c.NightBingeProtected = false
}

// WeeklyPayout is what the next weekly settlement will pay out.
func (c *Character) WeeklyPayout() int {
	bonus := aboveBase(c.Charisma)*charismaPayBonus + aboveBase(c.Level)*levelPayBonus
	return c.WageAccrued + c.BonusAccrued + weeklyFixedPay + weeklyFixedBonus + bonus
}

func (c *Character) settleWeek(report *SettlementReport) {
	if payout := c.WeeklyPayout(); payout > 0 {
		c.Rubles += payout
		c.WeeklyPayouts++
		report.WeeklyPayout = payout
		c.logEvent(fmt.Sprintf("Weekly pay: wage %d ₽ + bonuses %d ₽ + fixed %d ₽ + bonus %d ₽ + RPG %d ₽ = %d ₽.",
			c.WageAccrued, c.BonusAccrued, weeklyFixedPay, weeklyFixedBonus,
			payout-c.WageAccrued-c.BonusAccrued-weeklyFixedPay-weeklyFixedBonus, payout))
		c.WageAccrued = 0
		c.BonusAccrued = 0
	}
	if c.UtilitiesWeekly > 0 {
		c.Rubles -= c.UtilitiesWeekly
		c.logEvent(fmt.Sprintf("Paid utilities: −%d ₽.", c.UtilitiesWeekly))
	}
	if interest := c.LoanInterest(); interest > 0 {
		c.LoanPrincipal += interest
		report.LoanInterest = interest
		c.logEvent(fmt.Sprintf("Microloan interest: +%d ₽. Debt: %d ₽.", interest, c.LoanPrincipal))
	}
	if c.random().Float64() < weeklyMishapOdds {
		m := weeklyMishaps[c.random().IntN(len(weeklyMishaps))]
		c.Rubles -= m.cost
		c.ChangeMorale(m.morale)
		report.Mishap = fmt.Sprintf(m.text, m.cost)
		c.logEvent(report.Mishap)
	}
}
