package engine

import "fmt"

const (
	walkBaseMinutes  = 25
	busMinutes       = 10
	busCost          = 40
	walkWeightLossKg = 0.02
)

// taxiMinutes and taxiCost derive from the bus fare.
var (
	taxiMinutes = max(5, busMinutes-3)
	taxiCost    = max(120, busCost*4)
)

// TravelMinutes adjusts a base trip length for the mode. Walking gets faster
// with agility and slower for heavy characters.
func (c *Character) TravelMinutes(mode TravelMode, base int) int {
	minutes := max(1, base)
	if mode != TravelWalk {
		return minutes
	}
	agilityBonus := aboveBase(c.Agility) * 2
	weightPenalty := 0
	switch {
	case c.WeightKg >= 110:
		weightPenalty = 6
	case c.WeightKg >= 100:
		weightPenalty = 3
	}
	return max(1, minutes-agilityBonus+weightPenalty)
}

// TravelQuote is what a trip will cost before any discount.
type TravelQuote struct {
	Mode    TravelMode
	Minutes int
	Cost    int
}

// QuoteTravel prices a trip without taking it.
func (c *Character) QuoteTravel(mode TravelMode) (TravelQuote, bool) {
	switch mode {
	case TravelWalk:
		return TravelQuote{Mode: mode, Minutes: c.TravelMinutes(TravelWalk, walkBaseMinutes)}, true
	case TravelBus:
		return TravelQuote{Mode: mode, Minutes: busMinutes, Cost: busCost}, true
	case TravelTaxi:
		return TravelQuote{Mode: mode, Minutes: taxiMinutes, Cost: taxiCost}, true
	default:
		return TravelQuote{}, false
	}
}

// Travel moves the character to another location.
func (c *Character) Travel(to Location, mode TravelMode) error {
	const action = "travel"
	if !to.IsValid() {
		return c.refuse(invalidAction(action, fmt.Sprintf("Unknown place %q.", to)))
	}
	if to == c.Location {
		return c.refuse(invalidAction(action, fmt.Sprintf("You are already at %s.", to)))
	}
	q, ok := c.QuoteTravel(mode)
	if !ok {
		return c.refuse(invalidAction(action, fmt.Sprintf("Unknown travel mode %q.", mode)))
	}

	switch mode {
	case TravelWalk:
		c.AdvanceTime(q.Minutes)
		c.addWeight(-walkWeightLossKg)
		c.Location = to
		c.logEvent(fmt.Sprintf("Walked to %s (−%.2f kg, %d min).", to, walkWeightLossKg, q.Minutes))
	case TravelBus, TravelTaxi:
		c.ChangeMoney(-q.Cost)
		c.AdvanceTime(q.Minutes)
		c.Location = to
		c.logEvent(fmt.Sprintf("Took the %s to %s (−%d ₽).", mode, to, q.Cost))
	}
	return nil
}
