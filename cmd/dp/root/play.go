package root

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kezhick/Depooper/internal/engine"
	"github.com/kezhick/Depooper/internal/ui"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in text mode with a numbered menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := svc.Load(ctx, cfg.Storage.Slot)
			if err != nil {
				return err
			}
			save := func() error { return svc.Save(ctx, cfg.Storage.Slot, c) }
			return playLoop(cmd.InOrStdin(), cmd.OutOrStdout(), c, cfg.Work.EventsPerShift, save)
		},
	}

	return cmd
}

// playLoop runs the menu until the player quits, input ends or the game is
// over. save runs after every turn.
func playLoop(r io.Reader, out io.Writer, c *engine.Character, shiftEvents int, save func() error) error {
	in := bufio.NewScanner(r)
	menu := engine.Commands()

	for !c.IsGameOver() {
		printStats(out, c)
		printMenu(out, menu)
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			return in.Err()
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}

		from := len(c.Events)
		switch choice := fields[0]; choice {
		case "q", "quit", "exit":
			return save()
		case "0":
			report := c.EndDay()
			printEvents(out, c.Events[from:])
			printReport(out, report)
		case "w":
			pick := func(ev engine.WorkEvent) (int, bool) { return promptChoice(in, out, ev) }
			if err := runShift(out, c, shiftEvents, pick); err != nil {
				fmt.Fprintln(out, ui.Warn.Render(err.Error()))
			}
		default:
			name := choice
			if n, err := strconv.Atoi(choice); err == nil {
				if n < 1 || n > len(menu) {
					fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("No menu item %d.", n)))
					continue
				}
				name = menu[n-1].Name
			}
			res, err := c.Perform(name, fields[1:]...)
			printEvents(out, res.Events)
			// Refusals are already in the event log; only bad input is echoed.
			if errors.Is(err, engine.ErrUnrecognized) {
				fmt.Fprintln(out, ui.Warn.Render(err.Error()))
			}
			if res.Pending != nil {
				handlePending(in, out, c, *res.Pending)
			}
		}
		if err := save(); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, ui.BadgeGameOver)
	return nil
}

func handlePending(in *bufio.Scanner, out io.Writer, c *engine.Character, enc engine.Encounter) {
	fmt.Fprintf(out, "%s %s\nFace it? [y/N] ", ui.IconWarn, enc.Message)
	if !in.Scan() || strings.ToLower(strings.TrimSpace(in.Text())) != "y" {
		fmt.Fprintln(out, ui.Muted.Render("You crossed the street."))
		return
	}
	from := len(c.Events)
	if _, err := c.AcceptEncounter(enc); err != nil {
		fmt.Fprintln(out, ui.Warn.Render(err.Error()))
	}
	printEvents(out, c.Events[from:])
}

func printMenu(w io.Writer, menu []engine.Command) {
	for i, a := range menu {
		fmt.Fprintf(w, "%s %s %s\n", ui.Key.Render(fmt.Sprintf("%2d", i+1)), a.Summary, ui.Muted.Render(a.Args))
	}
	fmt.Fprintf(w, "%s Work a shift   %s End the day   %s Quit\n", ui.Key.Render(" w"), ui.Key.Render(" 0"), ui.Key.Render(" q"))
}
