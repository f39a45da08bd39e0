package engine

import (
	"fmt"
	"math"
)

const (
	// MoneyCrunchThreshold reveals the money crunch quest once reached.
	MoneyCrunchThreshold = -5000

	// MaxCharismaDiscountPct caps the charisma discount on spending.
	MaxCharismaDiscountPct = 10

	// MaxMicroloan is the largest single loan on offer.
	MaxMicroloan = 10000
)

// DiscountPct is the charisma discount applied to spending: 1% per point above 1, up to 10%.
func (c *Character) DiscountPct() int {
	return min(MaxCharismaDiscountPct, aboveBase(c.Charisma))
}

// discounted applies the charisma discount to a negative delta.
func (c *Character) discounted(delta int) int {
	if delta >= 0 {
		return delta
	}
	pct := c.DiscountPct()
	return int(math.RoundToEven(float64(delta) * float64(100-pct) / 100.0))
}

// Price is what a purchase at the given list price costs after the charisma discount.
func (c *Character) Price(cost int) int {
	return -c.discounted(-cost)
}

// ChangeMoney adjusts the balance, discounting spending by charisma.
// It returns the delta actually applied.
func (c *Character) ChangeMoney(delta int) int {
	applied := c.discounted(delta)
	c.Rubles += applied
	c.logEvent(fmt.Sprintf("Balance: %d ₽", c.Rubles))

	if c.Rubles <= MoneyCrunchThreshold && c.Quests[QuestMoneyCrunch].Status == QuestHidden {
		if err := c.RevealQuest(QuestMoneyCrunch); err != nil {
			c.logger().Warn("money crunch quest", "err", err)
		} else {
			c.logEvent("Quest: the hero is in a jam and urgently needs cash!")
		}
	}
	return applied
}

// TakeMicroloan borrows amount rubles.
func (c *Character) TakeMicroloan(amount int) error {
	const action = "take loan"
	if amount <= 0 {
		return c.refuse(invalidAction(action, "Loan amount must be positive."))
	}
	if amount > MaxMicroloan {
		return c.refuse(invalidAction(action, fmt.Sprintf("Microloans go up to %d ₽.", MaxMicroloan)))
	}
	c.LoanPrincipal += amount
	c.Rubles += amount
	c.LoansTaken++
	c.logEvent(fmt.Sprintf("Took a microloan of %d ₽. Debt: %d ₽.", amount, c.LoanPrincipal))
	return nil
}

// RepayLoan pays down the loan with at most the available balance.
// It returns the amount the principal actually dropped by.
func (c *Character) RepayLoan(amount int) (int, error) {
	const action = "repay loan"
	if amount <= 0 {
		return 0, c.refuse(invalidAction(action, "Repayment must be positive."))
	}
	pay := min(amount, c.Rubles)
	if pay <= 0 {
		return 0, c.refuse(insufficient(action, "Not enough money to repay the loan."))
	}
	c.Rubles -= pay
	prev := c.LoanPrincipal
	c.LoanPrincipal = max(0, c.LoanPrincipal-pay)
	repaid := prev - c.LoanPrincipal
	c.logEvent(fmt.Sprintf("Repaid %d ₽ of the loan. Remaining debt: %d ₽.", repaid, c.LoanPrincipal))
	return repaid, nil
}

// LoanInterest is the ceiling-rounded weekly interest on the current principal.
func (c *Character) LoanInterest() int {
	if c.LoanPrincipal <= 0 || c.LoanWeeklyInterestPct <= 0 {
		return 0
	}
	pct := c.LoanWeeklyInterestPct
	whole, rest := c.LoanPrincipal/100, c.LoanPrincipal%100
	if whole > (math.MaxInt-100)/pct {
		return math.MaxInt / 2
	}
	return whole*pct + (rest*pct+99)/100
}
