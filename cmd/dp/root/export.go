package root

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/kezhick/Depooper/internal/engine"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the save slot as flat JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCharacter(context.Background(), func(_ *engine.Service, c *engine.Character) error {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(c.Snapshot())
			})
		},
	}

	return cmd
}
