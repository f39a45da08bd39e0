package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnrecognized is returned when player input matches no known name.
var ErrUnrecognized = errors.New("unrecognized input")

type alias[T any] struct {
	name  string
	value T
}

// matchAlias resolves input against the alias table: exact match first, then
// an unambiguous prefix, then the closest name within a small edit distance.
func matchAlias[T any](what, input string, table []alias[T]) (T, error) {
	var zero T
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return zero, fmt.Errorf("%w: empty %s", ErrUnrecognized, what)
	}
	for _, a := range table {
		if a.name == s {
			return a.value, nil
		}
	}

	var prefixed []alias[T]
	for _, a := range table {
		if len(s) >= 2 && strings.HasPrefix(a.name, s) {
			prefixed = append(prefixed, a)
		}
	}
	if len(prefixed) > 0 && sameValue(prefixed) {
		return prefixed[0].value, nil
	}

	type scored struct {
		alias[T]
		dist int
	}
	var near []scored
	if len(s) >= 3 {
		for _, a := range table {
			d := levenshtein.ComputeDistance(s, a.name)
			if d <= levenshteinLimit(len(a.name)) {
				near = append(near, scored{alias: a, dist: d})
			}
		}
	}
	if len(near) == 0 {
		return zero, fmt.Errorf("%w: unknown %s %q", ErrUnrecognized, what, input)
	}
	sort.SliceStable(near, func(i, j int) bool {
		if near[i].dist == near[j].dist {
			return near[i].name < near[j].name
		}
		return near[i].dist < near[j].dist
	})
	return near[0].value, nil
}

func sameValue[T any](as []alias[T]) bool {
	first := fmt.Sprint(as[0].value)
	for _, a := range as[1:] {
		if fmt.Sprint(a.value) != first {
			return false
		}
	}
	return true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

var habitAliases = []alias[Habit]{
	{"coffee", HabitCoffee},
	{"caffeine", HabitCoffee},
	{"smoking", HabitSmoking},
	{"smoke", HabitSmoking},
	{"cigarettes", HabitSmoking},
	{"overeating", HabitOvereating},
	{"overeat", HabitOvereating},
	{"food", HabitOvereating},
}

// ParseHabit parses a habit name such as "coffee", "smoke" or "overeat".
func ParseHabit(input string) (Habit, error) {
	return matchAlias("habit", input, habitAliases)
}

var coffeeAliases = []alias[CoffeeQuality]{
	{"instant", CoffeeInstant},
	{"ground", CoffeeGround},
	{"premium", CoffeePremium},
	{"super", CoffeePremium},
}

func ParseCoffeeQuality(input string) (CoffeeQuality, error) {
	return matchAlias("coffee", input, coffeeAliases)
}

var foodAliases = []alias[FoodKind]{
	{"fast", FoodFast},
	{"fastfood", FoodFast},
	{"junk", FoodFast},
	{"balanced", FoodBalanced},
	{"normal", FoodBalanced},
	{"super", FoodSuper},
	{"healthy", FoodSuper},
}

func ParseFood(input string) (FoodKind, error) {
	return matchAlias("food", input, foodAliases)
}

var locationAliases = []alias[Location]{
	{"home", LocationHome},
	{"work", LocationWork},
	{"office", LocationWork},
	{"gym", LocationGym},
	{"park", LocationPark},
	{"playground", LocationPark},
}

func ParseLocation(input string) (Location, error) {
	return matchAlias("place", input, locationAliases)
}

var travelAliases = []alias[TravelMode]{
	{"walk", TravelWalk},
	{"foot", TravelWalk},
	{"bus", TravelBus},
	{"taxi", TravelTaxi},
	{"cab", TravelTaxi},
}

func ParseTravelMode(input string) (TravelMode, error) {
	return matchAlias("travel mode", input, travelAliases)
}

// ParseDifficulty accepts only exact mode names; an empty string is the default.
func ParseDifficulty(input string) (Difficulty, error) {
	d := Difficulty(strings.TrimSpace(strings.ToLower(input)))
	if d == "" {
		return DefaultDifficulty, nil
	}
	if !d.IsValid() {
		return DefaultDifficulty, fmt.Errorf("%w: unknown difficulty %q", ErrUnrecognized, input)
	}
	return d, nil
}
