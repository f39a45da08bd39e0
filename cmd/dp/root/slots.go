package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kezhick/Depooper/internal/ui"
)

func newSlotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List save slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			saves, err := svc.Slots(ctx)
			if err != nil {
				return err
			}
			if len(saves) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no saves)"))
				return nil
			}
			for _, s := range saves {
				marker := "  "
				if s.Slot == cfg.Storage.Slot {
					marker = "* "
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s %s day %d %s\n", marker, ui.Key.Render(s.Slot), s.Name, s.Day,
					ui.Muted.Render(s.UpdatedAt.Format("2006-01-02 15:04")))
			}
			return nil
		},
	}

	return cmd
}
