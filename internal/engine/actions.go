package engine

import (
	"fmt"
	"math"
)

type coffeeOption struct {
	cost         int
	bonus        int // added to CoffeeBenefit
	minutes      int
	needsMachine bool
	label        string
}

var coffeeOptions = map[CoffeeQuality]coffeeOption{
	CoffeeInstant: {cost: 100, bonus: 0, minutes: 10, label: "instant"},
	CoffeeGround:  {cost: 150, bonus: 4, minutes: 10, needsMachine: true, label: "ground"},
	CoffeePremium: {cost: 300, bonus: 8, minutes: 12, needsMachine: true, label: "super premium"},
}

// CoffeeCost is the undiscounted price of a cup.
func CoffeeCost(q CoffeeQuality) (int, bool) {
	opt, ok := coffeeOptions[q]
	return opt.cost, ok
}

// DrinkCoffee consumes one cup of the given quality.
func (c *Character) DrinkCoffee(q CoffeeQuality) error {
	const action = "coffee"
	opt, ok := coffeeOptions[q]
	if !ok {
		return c.refuse(invalidAction(action, fmt.Sprintf("Unknown coffee %q.", q)))
	}
	if !c.HasHabit(HabitCoffee) {
		return c.refuse(preconditionNotMet(action, "You no longer have a coffee habit!"))
	}
	if opt.needsMachine && !c.HasCoffeeMachine {
		return c.refuse(preconditionNotMet(action, "You need a coffee machine for that coffee."))
	}

	c.CoffeeCupsToday++
	c.addAlertness(c.CoffeeBenefit + opt.bonus)
	c.ChangeMoney(-opt.cost)
	c.logEvent(fmt.Sprintf("[%s] Drank %s coffee (−%d ₽). Alertness: %d.", c.Name, opt.label, opt.cost, c.Alertness))
	c.AdvanceTime(opt.minutes)
	c.GainXP(2)
	return nil
}

const (
	cigaretteCost    = 20
	cigaretteMinutes = 7
)

// Smoke smokes one cigarette.
func (c *Character) Smoke() error {
	if !c.HasHabit(HabitSmoking) {
		return c.refuse(preconditionNotMet("smoke", "You no longer have a smoking habit!"))
	}
	c.CigarettesToday++
	c.addHealth(c.SmokePenalty)
	c.addAlertness(-5)
	c.ChangeMoney(-cigaretteCost)
	c.logEvent(fmt.Sprintf("[%s] Smoked (−%d ₽). Health: %d.", c.Name, cigaretteCost, c.Health))
	c.AdvanceTime(cigaretteMinutes)
	c.ChangeMorale(-3)
	return nil
}

const (
	// KcalPerKg converts eaten calories into body weight.
	KcalPerKg = 7700.0

	// OvereatKcal marks the day overeaten once exceeded.
	OvereatKcal = 2500
)

type foodOption struct {
	cost         int
	minutes      int
	minKcal      int
	maxKcal      int
	health       int
	alertness    int
	requiresHome bool
	label        string
}

var foodOptions = map[FoodKind]foodOption{
	FoodFast:     {cost: 150, minutes: 20, minKcal: 500, maxKcal: 1500, health: -1, alertness: 2, label: "fast food"},
	FoodBalanced: {cost: 300, minutes: 40, minKcal: 800, maxKcal: 800, health: 3, alertness: 3, label: "a balanced meal"},
	FoodSuper:    {cost: 500, minutes: 50, minKcal: 500, maxKcal: 900, health: 7, alertness: 4, requiresHome: true, label: "a super healthy meal"},
}

// FoodMinutes is the time a meal takes.
func FoodMinutes(k FoodKind) int { return foodOptions[k].minutes }

// Eat eats a meal and returns the calories consumed.
func (c *Character) Eat(k FoodKind) (int, error) {
	const action = "eat"
	opt, ok := foodOptions[k]
	if !ok {
		return 0, c.refuse(invalidAction(action, fmt.Sprintf("Unknown food %q.", k)))
	}
	if opt.requiresHome && c.Location != LocationHome {
		return 0, c.refuse(preconditionNotMet(action, "Super healthy food is best cooked at home."))
	}

	c.ChangeMoney(-opt.cost)
	kcal := opt.minKcal
	if opt.maxKcal > opt.minKcal {
		kcal = randRange(c.random(), opt.minKcal, opt.maxKcal)
	}
	c.addHealth(opt.health)
	c.addAlertness(opt.alertness)
	if k == FoodSuper {
		c.NightBingeProtected = true
	}

	c.CaloriesToday += kcal
	c.addWeight(float64(kcal) / KcalPerKg)
	if c.CaloriesToday > OvereatKcal {
		c.OvereatenToday = true
	}
	c.AdvanceTime(opt.minutes)
	c.GainXP(1)
	c.logEvent(fmt.Sprintf("[%s] Ate %s (−%d ₽, %d kcal). Health: %d, alertness: %d, weight: %.1f kg.",
		c.Name, opt.label, opt.cost, kcal, c.Health, c.Alertness, c.WeightKg))
	return kcal, nil
}

const (
	// OvereatSleepPenaltyHours is cut from a nap taken on an overeaten day.
	OvereatSleepPenaltyHours = 0.8

	// MaxNapHours caps a single nap.
	MaxNapHours = 24.0
)

type SleepResult struct {
	EffectiveHours float64
	AlertnessGain  int
	HealthGain     int
}

// Sleep naps for the given hours. Smokers recover health at half rate.
func (c *Character) Sleep(hours float64) SleepResult {
	if math.IsNaN(hours) {
		hours = 0
	}
	hours = clampFloat(hours, 0, MaxNapHours)
	penalty := 0.0
	if c.OvereatenToday {
		penalty = OvereatSleepPenaltyHours
	}
	effective := math.Max(0, hours-penalty)

	alertGain := int(math.Min(float64(MaxAlertness-c.Alertness), effective*10))
	rate := 2.0
	if c.HasHabit(HabitSmoking) {
		rate = 1.0
	}
	healthGain := int(math.Max(0, effective*rate))

	c.addAlertness(alertGain)
	c.addHealth(healthGain)
	c.setSleepNeed(c.SleepNeed - 0.2)

	c.logEvent(fmt.Sprintf("[%s] Slept %.1f h (effective %.1f) → alertness +%d, health +%d.",
		c.Name, hours, effective, alertGain, healthGain))
	c.AdvanceTime(int(hours * 60))
	return SleepResult{EffectiveHours: effective, AlertnessGain: alertGain, HealthGain: healthGain}
}

const gymCost = 300

// TrainGym works out at the gym.
func (c *Character) TrainGym() error {
	if c.Location != LocationGym {
		return c.refuse(preconditionNotMet("gym", "You need to be at the gym to train there."))
	}
	c.ChangeMoney(-gymCost)
	const healthGain, alertGain = 8, 5
	loss := 0.7
	if c.HasHabit(HabitOvereating) {
		loss = 0.5
	}
	c.addHealth(healthGain)
	c.addAlertness(alertGain)
	c.addWeight(-loss)
	c.setSleepNeed(c.SleepNeed - (0.1 + 0.02*float64(aboveBase(c.Strength))))
	c.AdvanceTime(90)
	c.logEvent(fmt.Sprintf("Gym workout: health +%d, alertness +%d, weight −%.1f kg (−%d ₽).", healthGain, alertGain, loss, gymCost))
	c.Strength++
	c.GainXP(12)
	return nil
}

// TrainPark exercises at the outdoor park. Agility shortens the session.
func (c *Character) TrainPark() error {
	if c.Location != LocationPark {
		return c.refuse(preconditionNotMet("park", "You need to be at the park to train there."))
	}
	const healthGain, alertGain = 4, 4
	loss := 0.4
	if c.HasHabit(HabitOvereating) {
		loss = 0.3
	}
	c.addHealth(healthGain)
	c.addAlertness(alertGain)
	c.addWeight(-loss)
	c.AdvanceTime(max(30, 60-3*aboveBase(c.Agility)))
	c.logEvent(fmt.Sprintf("Park workout: health +%d, alertness +%d, weight −%.1f kg.", healthGain, alertGain, loss))
	c.Agility++
	c.GainXP(9)
	return nil
}

// Read spends an hour reading at home.
func (c *Character) Read() error {
	if c.Location != LocationHome {
		return c.refuse(preconditionNotMet("read", "Reading happens at home."))
	}
	c.AdvanceTime(60)
	c.Intelligence++
	c.GainXP(10)
	c.logEvent("Read for an hour: intelligence +1.")
	if c.random().Float64() < 0.25 {
		c.ChangeMorale(12)
		c.logEvent("Found a racy magazine. Morale +12.")
	} else {
		c.ChangeMorale(4)
		c.logEvent("Found a funny comic. Morale +4.")
	}
	return nil
}

// CoffeeMachinePrice is the default appliance price.
const CoffeeMachinePrice = 7990

// BuyCoffeeMachine buys the appliance needed for ground and premium coffee.
func (c *Character) BuyCoffeeMachine(price int) error {
	const action = "buy coffee machine"
	if c.HasCoffeeMachine {
		return c.refuse(preconditionNotMet(action, "You already own a coffee machine."))
	}
	if price <= 0 {
		price = CoffeeMachinePrice
	}
	c.ChangeMoney(-price)
	c.HasCoffeeMachine = true
	c.logEvent(fmt.Sprintf("Bought a coffee machine for %d ₽.", price))
	if err := c.IncrementQuest(QuestBuyCoffeeMachine, 1); err != nil {
		c.logger().Warn("coffee machine quest", "err", err)
	}
	return nil
}

const constructionPay = 1200

// ConstructionShift works a six-hour side job.
func (c *Character) ConstructionShift() {
	c.AdvanceTime(360)
	c.Rubles += constructionPay
	roll := c.random().Float64()
	switch {
	case roll < 0.2:
		c.addHealth(-12)
		c.ChangeMorale(-8)
		c.logEvent(fmt.Sprintf("Construction shift: injured. Health −12, morale −8. Paid %d ₽.", constructionPay))
	case roll < 0.5:
		c.Strength++
		c.addHealth(-4)
		c.logEvent(fmt.Sprintf("Construction shift: tough but useful. Strength +1, health −4. Paid %d ₽.", constructionPay))
	default:
		c.Strength++
		c.ChangeMorale(6)
		c.logEvent(fmt.Sprintf("Construction shift: went great. Strength +1, morale +6. Paid %d ₽.", constructionPay))
	}
	c.GainXP(15)
}

const (
	minDailyWage = 1600
	maxDailyWage = 2600
)

// FindJob spends four hours job hunting. It reports whether a job was found.
func (c *Character) FindJob() (bool, error) {
	if c.Employed {
		return false, c.refuse(preconditionNotMet("find job", "You already have a job."))
	}
	c.AdvanceTime(240)
	if c.random().Float64() >= 0.7 {
		c.logEvent("The job hunt came to nothing. Try again later.")
		return false, nil
	}
	c.Employed = true
	c.JobWarnings = 0
	c.FiredReason = ""
	c.DailyWage = clampInt(c.DailyWage+randRange(c.random(), -200, 200), minDailyWage, maxDailyWage)
	c.logEvent(fmt.Sprintf("Found a new job! Daily wage: %d ₽.", c.DailyWage))
	return true, nil
}

// RollDice rolls a die with at least two sides.
func (c *Character) RollDice(sides int) int {
	sides = max(2, sides)
	v := randRange(c.random(), 1, sides)
	c.logEvent(fmt.Sprintf("D%d roll: %d", sides, v))
	return v
}
