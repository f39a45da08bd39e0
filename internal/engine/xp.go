package engine

import "fmt"

const (
	// XPPerLevel scales the per-level threshold: XP_req(L) = 100 * L.
	XPPerLevel = 100

	// LevelUpMorale is the morale granted on every level gained.
	LevelUpMorale = 5
)

// XPRequiredForLevel returns the XP that must be consumed to leave the given level.
func XPRequiredForLevel(level int) int {
	if level <= 0 {
		return XPPerLevel
	}
	return level * XPPerLevel
}

// LevelUp describes one level gained during GainXP.
type LevelUp struct {
	Level     int
	Attribute Attribute
}

// GainXP accumulates XP and consumes level thresholds until none is reached.
// Each level raises one random attribute by 1 and morale by LevelUpMorale.
func (c *Character) GainXP(amount int) []LevelUp {
	if amount <= 0 {
		return nil
	}
	c.XP += amount

	var ups []LevelUp
	for c.XP >= XPRequiredForLevel(c.Level) {
		c.XP -= XPRequiredForLevel(c.Level)
		c.Level++
		attr := levelUpAttributes[c.random().IntN(len(levelUpAttributes))]
		c.raiseAttribute(attr, 1)
		c.ChangeMorale(LevelUpMorale)
		c.logEvent(fmt.Sprintf("New level %d! +1 %s and morale +%d.", c.Level, attr, LevelUpMorale))
		ups = append(ups, LevelUp{Level: c.Level, Attribute: attr})
	}
	if len(ups) > 0 {
		c.logger().Debug("level up", "level", c.Level, "levels", len(ups))
	}
	return ups
}

func (c *Character) raiseAttribute(a Attribute, by int) {
	switch a {
	case AttributeStrength:
		c.Strength += by
	case AttributeAgility:
		c.Agility += by
	case AttributeIntelligence:
		c.Intelligence += by
	case AttributeCharisma:
		c.Charisma += by
	}
}

// AttributeValue returns the current value of an attribute.
func (c *Character) AttributeValue(a Attribute) int {
	switch a {
	case AttributeStrength:
		return c.Strength
	case AttributeAgility:
		return c.Agility
	case AttributeIntelligence:
		return c.Intelligence
	case AttributeCharisma:
		return c.Charisma
	default:
		return 0
	}
}

// aboveBase is the attribute bonus over the starting value of 1.
func aboveBase(v int) int {
	if v <= 1 {
		return 0
	}
	return v - 1
}
