package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kezhick/Depooper/internal/engine"
	"github.com/kezhick/Depooper/internal/ui"
)

func newNewCmd() *cobra.Command {
	var name, difficulty string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new run in the save slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if name == "" {
				name = cfg.Player.Name
			}
			d := cfg.Difficulty()
			if difficulty != "" {
				var err error
				if d, err = engine.ParseDifficulty(difficulty); err != nil {
					return err
				}
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := svc.NewGame(ctx, cfg.Storage.Slot, name, d)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconOwl, "A new run begins"))
			fmt.Fprintln(out, ui.LabelValue("Hero", c.Name))
			fmt.Fprintln(out, ui.LabelValue("Difficulty", c.Difficulty))
			fmt.Fprintln(out, ui.LabelValue("Goal", fmt.Sprintf("%d days without bad habits", c.GoalDaysTarget)))
			fmt.Fprintln(out, ui.Muted.Render("Run "+c.RunID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "hero name")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "normal or hardcore")
	return cmd
}
