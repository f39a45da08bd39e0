package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kezhick/Depooper/internal/engine"
	"github.com/kezhick/Depooper/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "quests",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCharacter(context.Background(), func(_ *engine.Service, c *engine.Character) error {
				ids := c.VisibleQuests()
				if all {
					ids = engine.AllQuests
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Quests"))
				if len(ids) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(nothing revealed yet)"))
					return nil
				}
				for _, id := range ids {
					q := c.Quests[id]
					fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(q.Title), ui.Meter(q.Progress, q.Target, 10), ui.StatusText(string(q.Status)))
					fmt.Fprintf(out, "  %s\n", ui.Muted.Render(fmt.Sprintf("%s (%d/%d, reward %d XP, %d ₽)", q.Description, q.Progress, q.Target, q.Reward.XP, q.Reward.Rubles)))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include hidden quests")
	return cmd
}
