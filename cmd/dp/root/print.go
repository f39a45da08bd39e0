package root

import (
	"fmt"
	"io"

	"github.com/kezhick/Depooper/internal/engine"
	"github.com/kezhick/Depooper/internal/ui"
)

func printEvents(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, "  "+l)
	}
}

func printStats(w io.Writer, c *engine.Character) {
	fmt.Fprintf(w, "%s Day %d, %s @ %s\n", ui.IconOwl, c.Day(), c.Clock(), c.Location)
	fmt.Fprintf(w, "  %s  %s  %s  %s\n",
		ui.LabelValue("Alertness", ui.AlertnessText(c.Alertness, engine.MaxAlertness)),
		ui.LabelValue("Health", ui.HealthText(c.Health, engine.MaxHealth)),
		ui.LabelValue("Weight", fmt.Sprintf("%.1f kg", c.WeightKg)),
		ui.LabelValue("Money", ui.MoneyText(c.Rubles)),
	)
}

func printReport(w io.Writer, r engine.SettlementReport) {
	fmt.Fprintln(w, ui.H2.Render(fmt.Sprintf("%s Night after day %d", ui.IconMoon, r.Day)))
	fmt.Fprintln(w, "  "+ui.LabelValue("Slept", fmt.Sprintf("%.1f h", r.SleepHours)))
	if r.SuccessfulDay {
		fmt.Fprintln(w, "  "+ui.Good.Render(fmt.Sprintf("Clean day! Streak: %d", r.Streak)))
	} else {
		fmt.Fprintln(w, "  "+ui.Warn.Render("The streak is reset."))
	}
	if r.HealthRegen {
		fmt.Fprintln(w, "  "+ui.Good.Render("Health regenerated overnight."))
	}
	if r.Truant {
		fmt.Fprintln(w, "  "+ui.Bad.Render("Skipped work today."))
	}
	if r.Fired {
		fmt.Fprintln(w, "  "+ui.Bad.Render("Fired: "+engine.FiredForTruancy+"."))
	}
	if r.NightBingeKcal > 0 {
		fmt.Fprintln(w, "  "+ui.Warn.Render(fmt.Sprintf("%s Night binge: %d kcal.", ui.IconFood, r.NightBingeKcal)))
	}
	if r.WeeklyPayout > 0 {
		fmt.Fprintln(w, "  "+ui.Gold.Render(fmt.Sprintf("%s Weekly payout: %d ₽", ui.IconMoney, r.WeeklyPayout)))
	}
	if r.LoanInterest > 0 {
		fmt.Fprintln(w, "  "+ui.Warn.Render(fmt.Sprintf("Loan interest: +%d ₽", r.LoanInterest)))
	}
	if r.Mishap != "" {
		fmt.Fprintln(w, "  "+ui.Warn.Render(r.Mishap))
	}
	for _, err := range r.Failures {
		fmt.Fprintln(w, "  "+ui.Muted.Render(ui.IconWarn+" "+err.Error()))
	}
	if r.GameOver {
		fmt.Fprintln(w, ui.BadgeGameOver)
	}
}
