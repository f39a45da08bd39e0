package engine

// Difficulty is the game mode preset.
type Difficulty string

const (
	DifficultyNormal   Difficulty = "normal"
	DifficultyHardcore Difficulty = "hardcore"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyNormal, DifficultyHardcore:
		return true
	default:
		return false
	}
}

// DefaultDifficulty is used when user input is missing/invalid.
const DefaultDifficulty Difficulty = DifficultyNormal

type Location string

const (
	LocationHome Location = "home"
	LocationWork Location = "work"
	LocationGym  Location = "gym"
	LocationPark Location = "park"
)

// AllLocations lists places in travel-menu order.
var AllLocations = []Location{LocationHome, LocationWork, LocationGym, LocationPark}

func (l Location) IsValid() bool {
	switch l {
	case LocationHome, LocationWork, LocationGym, LocationPark:
		return true
	default:
		return false
	}
}

type CoffeeQuality string

const (
	CoffeeInstant CoffeeQuality = "instant"
	CoffeeGround  CoffeeQuality = "ground"
	CoffeePremium CoffeeQuality = "premium"
)

type FoodKind string

const (
	FoodFast     FoodKind = "fast"
	FoodBalanced FoodKind = "balanced"
	FoodSuper    FoodKind = "super"
)

type TravelMode string

const (
	TravelWalk TravelMode = "walk"
	TravelBus  TravelMode = "bus"
	TravelTaxi TravelMode = "taxi"
)

// Attribute is one of the four RPG attributes raised on level-up.
type Attribute string

const (
	AttributeStrength     Attribute = "strength"
	AttributeAgility      Attribute = "agility"
	AttributeIntelligence Attribute = "intelligence"
	AttributeCharisma     Attribute = "charisma"
)

// levelUpAttributes is the order a level-up roll indexes into.
var levelUpAttributes = []Attribute{AttributeStrength, AttributeAgility, AttributeIntelligence, AttributeCharisma}
