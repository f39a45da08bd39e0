package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kezhick/Depooper/internal/ui"
)

func newLogCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the event log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			events, err := svc.RecentEvents(ctx, cfg.Storage.Slot, n)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no events yet)"))
				return nil
			}
			for _, e := range events {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Muted.Render(fmt.Sprintf("%4d", e.Seq)), e.Message)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "lines", "n", 20, "number of events (0 for all)")
	return cmd
}
