package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Depooper theme (CLI + TUI).

const (
	IconOwl     = "🦉"
	IconLark    = "🐦"
	IconCoffee  = "☕"
	IconSmoke   = "🚬"
	IconFood    = "🍔"
	IconSleep   = "😴"
	IconMoney   = "💰"
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconScroll  = "📜"
	IconWork    = "💼"
	IconMoon    = "🌙"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp  = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeGameOver = lipgloss.NewStyle().Bold(true).Foreground(cBad).Render("GAME OVER")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StatusText colours a quest status.
func StatusText(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	switch s {
	case "completed":
		return Good.Render(IconDone + " completed")
	case "in_progress":
		return H2.Render("in progress")
	case "hidden":
		return Muted.Render("hidden")
	default:
		return Muted.Render(status)
	}
}

// PhaseText colours a habit cessation phase.
func PhaseText(phase string) string {
	switch phase {
	case "cleared":
		return Good.Render("beaten")
	case "attemptable":
		return Gold.Render("ready to quit")
	case "cooldown":
		return Warn.Render("cooldown")
	default:
		return Bad.Render("active")
	}
}

// AlertnessText colours alertness: blue when rested, red when exhausted.
func AlertnessText(v, max int) string {
	s := fmt.Sprintf("%d/%d", v, max)
	switch {
	case v >= 70:
		return H2.Render(s)
	case v >= 35:
		return Warn.Render(s)
	default:
		return Bad.Render(s)
	}
}

func HealthText(v, max int) string {
	s := fmt.Sprintf("%d/%d", v, max)
	switch {
	case v >= 140:
		return Good.Render(s)
	case v >= 70:
		return Warn.Render(s)
	default:
		return Bad.Render(s)
	}
}

func MoneyText(rubles int) string {
	s := fmt.Sprintf("%d ₽", rubles)
	if rubles < 0 {
		return Bad.Render(s)
	}
	return Gold.Render(s)
}

// Meter renders a fixed-width bar for value out of total.
func Meter(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	value = max(0, min(value, total))
	filled := min(width, int(float64(value)/float64(total)*float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func HabitIcon(habit string) string {
	switch habit {
	case "coffee":
		return IconCoffee
	case "smoking":
		return IconSmoke
	case "overeating":
		return IconFood
	default:
		return IconInfo
	}
}
