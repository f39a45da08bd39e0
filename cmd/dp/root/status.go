package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kezhick/Depooper/internal/engine"
	"github.com/kezhick/Depooper/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the hero's stats, habits and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCharacter(context.Background(), func(_ *engine.Service, c *engine.Character) error {
				out := cmd.OutOrStdout()

				fmt.Fprintln(out, ui.Heading(ui.IconSparkle, c.Name+" ("+string(c.Difficulty)+")"))
				printStats(out, c)
				fmt.Fprintln(out, ui.LabelValue("Sleep need", fmt.Sprintf("%.1f h", c.SleepNeed)))
				fmt.Fprintln(out, ui.LabelValue("Morale", c.Morale))
				fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d/%d (best %d)", c.GoalStreakDays, c.GoalDaysTarget, c.BestStreakDays)))
				fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d %s %d/%d XP", c.Level, ui.Meter(c.XP, engine.XPRequiredForLevel(c.Level), 20), c.XP, engine.XPRequiredForLevel(c.Level))))
				if c.IsGameOver() {
					fmt.Fprintln(out, ui.BadgeGameOver)
				}
				fmt.Fprintln(out, "")

				fmt.Fprintln(out, ui.H2.Render("📊 Attributes"))
				attrs := make([]string, 0, len(attributeLabels))
				for _, a := range attributeLabels {
					attrs = append(attrs, fmt.Sprintf("%s %d", a.label, c.AttributeValue(a.attr)))
				}
				fmt.Fprintln(out, "- "+strings.Join(attrs, "  "))
				fmt.Fprintln(out, "")

				fmt.Fprintln(out, ui.H2.Render("🚭 Habits"))
				for _, h := range engine.AllHabits {
					phase := c.HabitPhase(h)
					line := fmt.Sprintf("- %s %s: %s", ui.HabitIcon(h.String()), h, ui.PhaseText(string(phase)))
					switch phase {
					case engine.PhaseAttemptable:
						line += ui.Muted.Render(fmt.Sprintf(" (chance %.0f%%)", c.KickChance(h)*100))
					case engine.PhaseOnCooldown:
						line += ui.Muted.Render(fmt.Sprintf(" (%d days left)", c.DaysUntilKickAvailable(h)))
					case engine.PhaseActive:
						if err := c.CanAttemptKick(h); err != nil {
							line += ui.Muted.Render(" (" + err.Error() + ")")
						}
					}
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out, "")

				fmt.Fprintln(out, ui.H2.Render(ui.IconWork+" Work & money"))
				if c.Employed {
					fmt.Fprintf(out, "- Employed at %d ₽/day, warnings %d, accrued %d ₽ + bonus %d ₽\n", c.DailyWage, c.JobWarnings, c.WageAccrued, c.BonusAccrued)
				} else {
					reason := c.FiredReason
					if reason == "" {
						reason = "looking for work"
					}
					fmt.Fprintln(out, "- Unemployed: "+ui.Muted.Render(reason))
				}
				fmt.Fprintf(out, "- Next weekly payout: %d ₽, utilities %d ₽\n", c.WeeklyPayout(), c.UtilitiesWeekly)
				if c.LoanPrincipal > 0 {
					fmt.Fprintf(out, "- Debt %s, weekly interest %d ₽\n", ui.Bad.Render(fmt.Sprintf("%d ₽", c.LoanPrincipal)), c.LoanInterest())
				}
				if pct := c.DiscountPct(); pct > 0 {
					fmt.Fprintf(out, "- Charisma discount: %d%%\n", pct)
				}
				fmt.Fprintln(out, "")

				fmt.Fprintln(out, ui.H2.Render(ui.IconCoffee+" Menu"))
				for _, q := range []engine.CoffeeQuality{engine.CoffeeInstant, engine.CoffeeGround, engine.CoffeePremium} {
					cost, _ := engine.CoffeeCost(q)
					fmt.Fprintf(out, "- %s coffee: %d ₽\n", q, c.Price(cost))
				}
				for _, k := range []engine.FoodKind{engine.FoodFast, engine.FoodBalanced, engine.FoodSuper} {
					fmt.Fprintf(out, "- %s meal: %d min\n", k, engine.FoodMinutes(k))
				}
				fmt.Fprintln(out, "")

				checker := engine.NewAchievementChecker(c)
				fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, checker.CountEarned(), checker.CountTotal())))
				for _, a := range checker.GetAchievements() {
					if a.Earned {
						fmt.Fprintf(out, "- %s %s %s\n", a.Icon, ui.Gold.Render(a.Name), ui.Muted.Render(a.Description))
					} else {
						fmt.Fprintf(out, "- %s %s\n", ui.Dim.Render("🔒 "+a.Name), ui.Muted.Render(a.Description))
					}
				}
				return nil
			})
		},
	}

	return cmd
}

var attributeLabels = []struct {
	attr  engine.Attribute
	label string
}{
	{engine.AttributeStrength, "💪 STR"},
	{engine.AttributeAgility, "🤸 AGI"},
	{engine.AttributeIntelligence, "🧠 INT"},
	{engine.AttributeCharisma, "🗣 CHA"},
}
