package root

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kezhick/Depooper/internal/engine"
	"github.com/kezhick/Depooper/internal/ui"
)

func newWorkCmd() *cobra.Command {
	var auto bool

	cmd := &cobra.Command{
		Use:   "work",
		Short: "Work today's shift at the office",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCharacter(context.Background(), func(_ *engine.Service, c *engine.Character) error {
				in := bufio.NewScanner(cmd.InOrStdin())
				pick := func(ev engine.WorkEvent) (int, bool) {
					if auto {
						return 0, true
					}
					return promptChoice(in, cmd.OutOrStdout(), ev)
				}
				return runShift(cmd.OutOrStdout(), c, cfg.Work.EventsPerShift, pick)
			})
		},
	}

	cmd.Flags().BoolVar(&auto, "auto", false, "always take the first choice")
	return cmd
}

// runShift plays a whole shift, asking pick for every decision. A false
// second return leaves the office early; the shift stays unfinished.
func runShift(out io.Writer, c *engine.Character, events int, pick func(engine.WorkEvent) (int, bool)) error {
	s, err := c.StartShift(events)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, ui.Heading(ui.IconWork, fmt.Sprintf("Shift started at %s", c.Clock())))
	for !s.Done() {
		choice, ok := pick(s.Current)
		if !ok {
			fmt.Fprintln(out, ui.Warn.Render("You left the office early."))
			return nil
		}
		msg, err := s.Choose(choice)
		if err != nil {
			fmt.Fprintln(out, ui.Warn.Render(err.Error()))
			continue
		}
		fmt.Fprintln(out, "  "+msg)
	}
	sum := s.Summary
	line := fmt.Sprintf("Shift over at %s: focus %d, stress %d, quest steps %d.", c.Clock(), sum.Focus, sum.Stress, sum.QuestsAdvanced)
	if sum.Productive {
		fmt.Fprintln(out, ui.Good.Render(line))
	} else {
		fmt.Fprintln(out, line)
	}
	return nil
}

func promptChoice(in *bufio.Scanner, out io.Writer, ev engine.WorkEvent) (int, bool) {
	for {
		fmt.Fprintf(out, "%s\n  %s %s   %s %s\n> ", ev.Prompt, ui.Key.Render("1"), ev.Choices[0], ui.Key.Render("2"), ev.Choices[1])
		if !in.Scan() {
			return 0, false
		}
		switch strings.TrimSpace(in.Text()) {
		case "1":
			return 0, true
		case "2":
			return 1, true
		case "q":
			return 0, false
		}
		fmt.Fprintln(out, ui.Muted.Render("Type 1 or 2 (q leaves)."))
	}
}
