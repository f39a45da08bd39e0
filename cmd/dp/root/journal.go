package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/kezhick/Depooper/internal/engine"
)

func newJournalCmd() *cobra.Command {
	var (
		n   int
		raw bool
	)

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Render the run as a markdown journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCharacter(context.Background(), func(_ *engine.Service, c *engine.Character) error {
				md := journalMarkdown(c, n)
				if raw {
					_, err := fmt.Fprint(cmd.OutOrStdout(), md)
					return err
				}
				r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
				if err != nil {
					return err
				}
				rendered, err := r.Render(md)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
				return err
			})
		},
	}

	cmd.Flags().IntVarP(&n, "lines", "n", 30, "recent events to include")
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	return cmd
}

func journalMarkdown(c *engine.Character, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s, day %d\n\n", c.Name, c.Day())
	fmt.Fprintf(&b, "| Alertness | Health | Weight | Money | Streak |\n|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %.1f kg | %d ₽ | %d/%d |\n\n", c.Alertness, c.Health, c.WeightKg, c.Rubles, c.GoalStreakDays, c.GoalDaysTarget)

	b.WriteString("## Habits\n\n")
	for _, h := range engine.AllHabits {
		fmt.Fprintf(&b, "- **%s**: %s\n", h, c.HabitPhase(h))
	}

	b.WriteString("\n## Quests\n\n")
	for _, id := range c.VisibleQuests() {
		q := c.Quests[id]
		mark := " "
		if q.Status == engine.QuestCompleted {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s (%d/%d)\n", mark, q.Title, q.Progress, q.Target)
	}

	checker := engine.NewAchievementChecker(c)
	fmt.Fprintf(&b, "\n## Achievements (%d/%d)\n\n", checker.CountEarned(), checker.CountTotal())
	for _, a := range checker.GetAchievements() {
		if a.Earned {
			fmt.Fprintf(&b, "- %s **%s**: %s\n", a.Icon, a.Name, a.Description)
		}
	}

	b.WriteString("\n## Recent events\n\n")
	for _, e := range c.RecentEvents(n) {
		fmt.Fprintf(&b, "> %s\n>\n", e)
	}
	return b.String()
}
