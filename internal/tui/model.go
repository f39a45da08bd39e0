package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kezhick/Depooper/internal/engine"
	"github.com/kezhick/Depooper/internal/ui"
)

const recentEvents = 12

var travelModes = []engine.TravelMode{engine.TravelWalk, engine.TravelBus, engine.TravelTaxi}

// placeKeys maps the number row onto destinations.
var placeKeys = map[string]engine.Location{
	"1": engine.LocationHome,
	"2": engine.LocationWork,
	"3": engine.LocationGym,
	"4": engine.LocationPark,
}

// actionKeys maps single keys onto engine commands.
var actionKeys = map[string][]string{
	"c": {"coffee"},
	"C": {"coffee", "ground"},
	"P": {"coffee", "premium"},
	"s": {"smoke"},
	"f": {"eat", "fast"},
	"b": {"eat", "balanced"},
	"u": {"eat", "super"},
	"n": {"sleep", "1"},
	"g": {"gym"},
	"p": {"park"},
	"r": {"read"},
	"m": {"construction"},
	"o": {"find-job"},
	"d": {"dice", "6"},
	"l": {"loan", "2000"},
	"L": {"loan", "5000"},
	"B": {"buy-machine"},
}

type boardModel struct {
	ctx         context.Context
	svc         *engine.Service
	slot        string
	shiftEvents int

	width  int
	height int

	char    *engine.Character
	shift   *engine.WorkShift
	pending *engine.Encounter

	selected int
	travel   int

	lastLog string
	loading bool

	// busy blocks input while an engine call runs; frozen is shown meanwhile
	// so View never reads the character concurrently.
	busy   bool
	frozen string
	err    error
}

type loadedMsg struct {
	char *engine.Character
	err  error
}

type actionMsg struct {
	lines   []string
	pending *engine.Encounter
	shift   *engine.WorkShift
	levelUp bool
	err     error
}

func newBoardModel(ctx context.Context, svc *engine.Service, slot string, shiftEvents int) boardModel {
	return boardModel{
		ctx:         ctx,
		svc:         svc,
		slot:        slot,
		shiftEvents: shiftEvents,
		loading:     true,
		lastLog:     "Loading…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		c, err := m.svc.Load(m.ctx, m.slot)
		return loadedMsg{char: c, err: err}
	}
}

// run executes fn against the character and saves the slot afterwards.
func (m boardModel) run(fn func(c *engine.Character) actionMsg) tea.Cmd {
	c := m.char
	return func() tea.Msg {
		from, level := len(c.Events), c.Level
		msg := fn(c)
		msg.levelUp = c.Level > level
		if msg.lines == nil {
			msg.lines = append([]string(nil), c.Events[from:]...)
		}
		if err := m.svc.Save(m.ctx, m.slot, c); err != nil {
			msg.err = errors.Join(msg.err, err)
		}
		return msg
	}
}

func (m boardModel) performCmd(name string, args ...string) tea.Cmd {
	return m.run(func(c *engine.Character) actionMsg {
		out, err := c.Perform(name, args...)
		return actionMsg{lines: out.Events, pending: out.Pending, err: err}
	})
}

func (m boardModel) travelCmd(to engine.Location) tea.Cmd {
	mode := string(travelModes[m.travel])
	return m.performCmd("travel", string(to), mode)
}

func (m boardModel) kickCmd(h engine.Habit) tea.Cmd {
	return m.performCmd("kick", h.String())
}

func (m boardModel) acceptCmd(enc engine.Encounter) tea.Cmd {
	return m.run(func(c *engine.Character) actionMsg {
		_, err := c.AcceptEncounter(enc)
		return actionMsg{err: err}
	})
}

func (m boardModel) startShiftCmd() tea.Cmd {
	return m.run(func(c *engine.Character) actionMsg {
		s, err := c.StartShift(m.shiftEvents)
		return actionMsg{shift: s, err: err}
	})
}

func (m boardModel) chooseCmd(s *engine.WorkShift, choice int) tea.Cmd {
	return m.run(func(c *engine.Character) actionMsg {
		_, err := s.Choose(choice)
		return actionMsg{shift: s, err: err}
	})
}

func (m boardModel) endDayCmd() tea.Cmd {
	return m.run(func(c *engine.Character) actionMsg {
		report := c.EndDay()
		return actionMsg{err: errors.Join(report.Failures...)}
	})
}

// dispatch freezes the current frame and runs cmd.
func (m boardModel) dispatch(cmd tea.Cmd, note string) (tea.Model, tea.Cmd) {
	m.lastLog = note
	m.frozen = m.View()
	m.busy = true
	return m, cmd
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.char = msg.char
		m.lastLog = fmt.Sprintf("Loaded slot %s, day %d.", m.slot, m.char.Day())
		return m, nil
	case actionMsg:
		m.busy = false
		m.frozen = ""
		m.pending = msg.pending
		m.shift = msg.shift
		if m.shift != nil && m.shift.Done() {
			sum := m.shift.Summary
			m.lastLog = fmt.Sprintf("Shift over: focus %d, stress %d.", sum.Focus, sum.Stress)
			m.shift = nil
			return m, nil
		}
		switch {
		case msg.err != nil:
			m.lastLog = ui.IconWarn + " " + msg.err.Error()
		case len(msg.lines) > 0:
			m.lastLog = msg.lines[len(msg.lines)-1]
		default:
			m.lastLog = "Done."
		}
		if msg.levelUp {
			m.lastLog = ui.BadgeLevelUp + " " + m.lastLog
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m boardModel) handleKey(key string) (tea.Model, tea.Cmd) {
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}
	if m.busy || m.loading || m.char == nil {
		return m, nil
	}
	if m.char.IsGameOver() {
		return m, nil
	}

	if m.pending != nil {
		switch key {
		case "y":
			enc := *m.pending
			m.pending = nil
			return m.dispatch(m.acceptCmd(enc), "Facing the encounter…")
		case "n", "esc":
			m.pending = nil
			m.lastLog = "You crossed the street and avoided trouble."
		}
		return m, nil
	}

	if m.shift != nil {
		switch key {
		case "1", "2":
			choice := int(key[0] - '1')
			return m.dispatch(m.chooseCmd(m.shift, choice), "Working…")
		}
		return m, nil
	}

	switch key {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(engine.AllHabits)-1 {
			m.selected++
		}
		return m, nil
	case "x", "enter":
		return m.dispatch(m.kickCmd(engine.AllHabits[m.selected]), "Trying to quit…")
	case "t":
		m.travel = (m.travel + 1) % len(travelModes)
		m.lastLog = "Travel by " + string(travelModes[m.travel]) + "."
		return m, nil
	case "w":
		return m.dispatch(m.startShiftCmd(), "Heading to work…")
	case "e":
		return m.dispatch(m.endDayCmd(), "Going to bed…")
	case "v":
		amount := strconv.Itoa(max(1, m.char.LoanPrincipal))
		return m.dispatch(m.performCmd("repay", amount), "Paying off the loan…")
	}
	if to, ok := placeKeys[key]; ok {
		return m.dispatch(m.travelCmd(to), "On the way…")
	}
	if args, ok := actionKeys[key]; ok {
		return m.dispatch(m.performCmd(args[0], args[1:]...), "…")
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.busy && m.frozen != "" {
		return m.frozen
	}

	header := m.renderHeader()
	sidebar := ui.Panel.Render(m.renderSidebar())
	main := m.renderMain()
	footer := m.renderFooter()

	leftW := 34
	if m.width > 0 {
		leftW = max(24, min(leftW, m.width/2))
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	rows := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.char == nil {
		return ui.Title.Render("Depooper") + " " + ui.Muted.Render("loading…")
	}
	c := m.char
	bar := ui.Meter(c.XP, engine.XPRequiredForLevel(c.Level), 20)
	head := fmt.Sprintf("%s %s | Day %d %s @ %s | Level %d %s",
		ui.Title.Render("Depooper"), c.Name, c.Day(), c.Clock(), c.Location, c.Level, bar)
	if c.IsGameOver() {
		head += " " + ui.BadgeGameOver
	} else if allCleared(c) {
		head += " " + ui.Good.Render(ui.IconLark+" lark")
	}
	return head
}

func (m boardModel) renderSidebar() string {
	if m.char == nil {
		return "Stats\n\nLoading…"
	}
	c := m.char
	lines := []string{ui.PanelTitle.Render("Stats")}
	lines = append(lines,
		ui.LabelValue(ui.IconBolt+" Alertness", ui.AlertnessText(c.Alertness, engine.MaxAlertness)),
		ui.LabelValue("Health", ui.HealthText(c.Health, engine.MaxHealth)),
		ui.LabelValue("Weight", fmt.Sprintf("%.1f kg", c.WeightKg)),
		ui.LabelValue(ui.IconSleep+" Sleep need", fmt.Sprintf("%.1f h", c.SleepNeed)),
		ui.LabelValue("Money", ui.MoneyText(c.Rubles)),
		ui.LabelValue("Morale", c.Morale),
		ui.LabelValue("Streak", fmt.Sprintf("%d/%d", c.GoalStreakDays, c.GoalDaysTarget)),
	)
	if c.LoanPrincipal > 0 {
		lines = append(lines, ui.LabelValue("Debt", ui.Bad.Render(fmt.Sprintf("%d ₽", c.LoanPrincipal))))
	}
	if c.Employed {
		lines = append(lines, ui.LabelValue("Job", fmt.Sprintf("%d ₽/day", c.DailyWage)))
	} else {
		lines = append(lines, ui.LabelValue("Job", ui.Muted.Render("none")))
	}

	lines = append(lines, "", ui.PanelTitle.Render("Habits"))
	for i, h := range engine.AllHabits {
		row := fmt.Sprintf("%s %s %s", ui.HabitIcon(h.String()), h, ui.PhaseText(string(c.HabitPhase(h))))
		if i == m.selected {
			row = ui.SelectedRow.Render("> " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading || m.char == nil {
		return "Loading…"
	}
	var out []string

	switch {
	case m.pending != nil:
		out = append(out, ui.H2.Render(ui.IconWarn+" Street encounter"), m.pending.Message, "", ui.Key.Render("y")+" face it   "+ui.Key.Render("n")+" avoid it", "")
	case m.shift != nil:
		ev := m.shift.Current
		out = append(out,
			ui.H2.Render(fmt.Sprintf("%s Work shift (%d left, focus %d, stress %d)", ui.IconWork, m.shift.EventsLeft, m.shift.Focus, m.shift.Stress)),
			ev.Prompt,
			fmt.Sprintf("%s %s   %s %s", ui.Key.Render("1"), ev.Choices[0], ui.Key.Render("2"), ev.Choices[1]),
			"",
		)
	}

	out = append(out, ui.H2.Render(ui.IconQuest+" Quests"))
	for _, id := range m.char.VisibleQuests() {
		q := m.char.Quests[id]
		out = append(out, fmt.Sprintf("- %s %d/%d %s", q.Title, q.Progress, q.Target, ui.StatusText(string(q.Status))))
	}
	out = append(out, "", ui.H2.Render(ui.IconScroll+" Journal"))
	for _, e := range m.char.RecentEvents(recentEvents) {
		out = append(out, ui.Dim.Render(e))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	keys := "c/C/P coffee · s smoke · f/b/u eat · n nap · g gym · p park · r read · m construction · o job · w work · d dice\n" +
		"l/L loan 2000/5000 · v repay · B buy machine\n" +
		"1-4 home/work/gym/park · t travel mode (" + string(travelModes[m.travel]) + ") · ↑/↓ habit · x quit habit · e end day · q exit"
	return "\n" + ui.Muted.Render(keys) + "\n" + m.lastLog
}

func allCleared(c *engine.Character) bool {
	for _, h := range engine.AllHabits {
		if c.HabitPhase(h) != engine.PhaseCleared {
			return false
		}
	}
	return true
}

func padRight(s string, w int) string {
	n := lipgloss.Width(s)
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}
