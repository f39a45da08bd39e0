package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kezhick/Depooper/internal/engine"
	"github.com/kezhick/Depooper/internal/ui"
)

func newDoCmd() *cobra.Command {
	var face bool

	cmd := &cobra.Command{
		Use:   "do <action> [args...]",
		Short: "Perform one action",
		Long:  "Perform one action. Actions:\n" + actionHelp(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("action is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCharacter(context.Background(), func(_ *engine.Service, c *engine.Character) error {
				if c.IsGameOver() {
					return errors.New("game over: start a new run with `dp new`")
				}
				out := cmd.OutOrStdout()
				res, err := c.Perform(args[0], args[1:]...)
				printEvents(out, res.Events)
				if err != nil {
					return err
				}
				if res.Pending != nil {
					if !face {
						fmt.Fprintln(out, ui.Muted.Render(ui.IconWarn+" "+res.Pending.Message+" You walked around it."))
					} else if err := faceEncounter(out, c, *res.Pending); err != nil {
						return err
					}
				}
				printStats(out, c)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&face, "face-encounters", false, "face street encounters instead of avoiding them")
	return cmd
}

// faceEncounter applies enc and prints every event it logged.
func faceEncounter(w io.Writer, c *engine.Character, enc engine.Encounter) error {
	from := len(c.Events)
	_, err := c.AcceptEncounter(enc)
	printEvents(w, c.Events[from:])
	return err
}

func actionHelp() string {
	var b strings.Builder
	for _, a := range engine.Commands() {
		fmt.Fprintf(&b, "  %-14s %-26s %s\n", a.Name, a.Args, a.Summary)
	}
	return b.String()
}
