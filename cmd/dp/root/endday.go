package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kezhick/Depooper/internal/engine"
)

func newEndDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "end-day",
		Aliases: []string{"sleep-night"},
		Short:   "Go to bed and settle the day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCharacter(context.Background(), func(_ *engine.Service, c *engine.Character) error {
				from := len(c.Events)
				report := c.EndDay()
				printEvents(cmd.OutOrStdout(), c.Events[from:])
				printReport(cmd.OutOrStdout(), report)
				printStats(cmd.OutOrStdout(), c)
				return nil
			})
		},
	}

	return cmd
}
