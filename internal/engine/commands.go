package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Command is one player action reachable by name from the CLI and the board.
type Command struct {
	Name    string
	Args    string
	Summary string

	// quiet commands never trigger a background encounter.
	quiet bool
	run   func(c *Character, args []string) error
}

// Outcome is what a performed command produced.
type Outcome struct {
	Events  []string
	// Pending is a previewed street encounter the player may accept.
	Pending *Encounter
}

var commands = []Command{
	{Name: "coffee", Args: "[instant|ground|premium]", Summary: "Drink a cup of coffee", run: runCoffee},
	{Name: "smoke", Summary: "Smoke a cigarette", run: func(c *Character, _ []string) error { return c.Smoke() }},
	{Name: "eat", Args: "[fast|balanced|super]", Summary: "Eat a meal", run: runEat},
	{Name: "sleep", Args: "[hours]", Summary: "Take a nap", run: runSleep},
	{Name: "gym", Summary: "Train at the gym", run: func(c *Character, _ []string) error { return c.TrainGym() }},
	{Name: "park", Summary: "Work out in the park", run: func(c *Character, _ []string) error { return c.TrainPark() }},
	{Name: "read", Summary: "Read a book at home", run: func(c *Character, _ []string) error { return c.Read() }},
	{Name: "kick", Args: "<habit>", Summary: "Try to quit a habit", run: runKick},
	{Name: "travel", Args: "<place> [walk|bus|taxi]", Summary: "Go somewhere", run: runTravel},
	{Name: "buy-machine", Summary: fmt.Sprintf("Buy a coffee machine (%d ₽)", CoffeeMachinePrice), run: func(c *Character, _ []string) error { return c.BuyCoffeeMachine(CoffeeMachinePrice) }},
	{Name: "loan", Args: "<amount>", Summary: "Take a microloan", quiet: true, run: runLoan},
	{Name: "repay", Args: "<amount>", Summary: "Repay the microloan", quiet: true, run: runRepay},
	{Name: "construction", Summary: "Work a construction side shift", run: func(c *Character, _ []string) error { c.ConstructionShift(); return nil }},
	{Name: "find-job", Summary: "Look for a job", run: func(c *Character, _ []string) error { _, err := c.FindJob(); return err }},
	{Name: "encounter", Args: "[drunk|gopnik|janitor]", Summary: "Walk into a street encounter", quiet: true, run: runEncounter},
	{Name: "dice", Args: "[sides]", Summary: "Roll a die", quiet: true, run: runDice},
}

// Commands lists the player actions in menu order.
func Commands() []Command {
	return append([]Command(nil), commands...)
}

var commandAliases = func() []alias[string] {
	var out []alias[string]
	for _, cmd := range commands {
		out = append(out, alias[string]{cmd.Name, cmd.Name})
	}
	return append(out,
		alias[string]{"drink", "coffee"},
		alias[string]{"cigarette", "smoke"},
		alias[string]{"nap", "sleep"},
		alias[string]{"go", "travel"},
		alias[string]{"quit", "kick"},
		alias[string]{"job", "find-job"},
		alias[string]{"roll", "dice"},
	)
}()

// LookupCommand resolves a possibly misspelt command name.
func LookupCommand(name string) (Command, error) {
	resolved, err := matchAlias("command", name, commandAliases)
	if err != nil {
		return Command{}, err
	}
	for _, cmd := range commands {
		if cmd.Name == resolved {
			return cmd, nil
		}
	}
	return Command{}, fmt.Errorf("%w: unknown command %q", ErrUnrecognized, name)
}

// Perform runs the named command and returns the events it logged. After a
// successful action a background encounter may be offered as a preview.
func (c *Character) Perform(name string, args ...string) (Outcome, error) {
	cmd, err := LookupCommand(name)
	if err != nil {
		return Outcome{}, err
	}
	from := len(c.Events)
	err = cmd.run(c, args)
	out := Outcome{Events: append([]string(nil), c.Events[from:]...)}
	if err != nil {
		return out, err
	}
	if !cmd.quiet && !c.IsGameOver() {
		if enc, ok := c.MaybeBackgroundEncounter(); ok {
			out.Pending = &enc
		}
	}
	c.logger().Debug("command", "name", cmd.Name, "args", strings.Join(args, " "), "events", len(out.Events))
	return out, nil
}

// AcceptEncounter applies a previewed encounter. The outcome is re-rolled
// for the same kind.
func (c *Character) AcceptEncounter(enc Encounter) (Encounter, error) {
	return c.RandomEncounter(c.Difficulty, true, enc.Kind)
}

func argOr(args []string, i int, def string) string {
	if i < len(args) && strings.TrimSpace(args[i]) != "" {
		return args[i]
	}
	return def
}

func (c *Character) intArg(action string, args []string, i int, def int) (int, error) {
	s := argOr(args, i, "")
	if s == "" {
		if def != 0 {
			return def, nil
		}
		return 0, c.refuse(invalidAction(action, "A number is required."))
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, c.refuse(invalidAction(action, fmt.Sprintf("%q is not a number.", s)))
	}
	return n, nil
}

func runCoffee(c *Character, args []string) error {
	q, err := ParseCoffeeQuality(argOr(args, 0, string(CoffeeInstant)))
	if err != nil {
		return err
	}
	return c.DrinkCoffee(q)
}

func runEat(c *Character, args []string) error {
	k, err := ParseFood(argOr(args, 0, string(FoodBalanced)))
	if err != nil {
		return err
	}
	_, err = c.Eat(k)
	return err
}

func runSleep(c *Character, args []string) error {
	s := argOr(args, 0, "1")
	hours, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(hours) || hours <= 0 || hours > MaxNapHours {
		return c.refuse(invalidAction("sleep", fmt.Sprintf("%q is not a number of hours between 0 and %g.", s, MaxNapHours)))
	}
	c.Sleep(hours)
	return nil
}

func runKick(c *Character, args []string) error {
	if len(args) == 0 {
		return c.refuse(invalidAction("kick", "Name the habit to quit."))
	}
	h, err := ParseHabit(args[0])
	if err != nil {
		return err
	}
	_, err = c.AttemptKick(h)
	return err
}

func runTravel(c *Character, args []string) error {
	if len(args) == 0 {
		return c.refuse(invalidAction("travel", "Name the place to go."))
	}
	to, err := ParseLocation(args[0])
	if err != nil {
		return err
	}
	mode, err := ParseTravelMode(argOr(args, 1, string(TravelWalk)))
	if err != nil {
		return err
	}
	return c.Travel(to, mode)
}

func runLoan(c *Character, args []string) error {
	n, err := c.intArg("take loan", args, 0, 0)
	if err != nil {
		return err
	}
	return c.TakeMicroloan(n)
}

func runRepay(c *Character, args []string) error {
	n, err := c.intArg("repay loan", args, 0, 0)
	if err != nil {
		return err
	}
	_, err = c.RepayLoan(n)
	return err
}

func runEncounter(c *Character, args []string) error {
	kind := EncounterKind(strings.ToLower(argOr(args, 0, "")))
	_, err := c.RandomEncounter(c.Difficulty, true, kind)
	return err
}

func runDice(c *Character, args []string) error {
	n, err := c.intArg("dice", args, 0, 6)
	if err != nil {
		return err
	}
	c.RollDice(n)
	return nil
}
