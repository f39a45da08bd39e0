package root

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kezhick/Depooper/internal/engine"
)

// highRand never lets a chance roll succeed.
type highRand struct{}

func (highRand) Float64() float64 { return 0.999 }
func (highRand) IntN(int) int { return 0 }

func newTestCharacter() *engine.Character {
	return engine.NewCharacter(
		engine.WithRand(highRand{}),
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func TestPlayLoopRunsMenuAndEndsDay(t *testing.T) {
	c := newTestCharacter()
	saves := 0
	save := func() error { saves++; return nil }

	in := strings.NewReader("1\nsmoke\n0\nq\n")
	var out bytes.Buffer
	require.NoError(t, playLoop(in, &out, c, 2, save))

	assert.Equal(t, 2, c.Day())
	assert.Equal(t, 4, saves)
	assert.Contains(t, out.String(), "Night after day 1")
}

func TestPlayLoopReportsBadInput(t *testing.T) {
	c := newTestCharacter()
	var out bytes.Buffer
	require.NoError(t, playLoop(strings.NewReader("99\nteleport\nq\n"), &out, c, 2, func() error { return nil }))

	assert.Contains(t, out.String(), "No menu item 99.")
	assert.Contains(t, out.String(), "unknown command")
}

func TestPlayLoopStopsOnGameOver(t *testing.T) {
	c := newTestCharacter()
	c.Health = 0
	var out bytes.Buffer
	require.NoError(t, playLoop(strings.NewReader("1\n"), &out, c, 2, func() error { return nil }))
	assert.Contains(t, out.String(), "GAME OVER")
	assert.Zero(t, c.CoffeeCupsToday)
}

func TestRunShiftAuto(t *testing.T) {
	c := newTestCharacter()
	var out bytes.Buffer
	err := runShift(&out, c, 3, func(engine.WorkEvent) (int, bool) { return 0, true })
	require.NoError(t, err)
	assert.True(t, c.WorkedToday)
	assert.Contains(t, out.String(), "Shift over")
}

func TestRunShiftLeavingEarly(t *testing.T) {
	c := newTestCharacter()
	var out bytes.Buffer
	err := runShift(&out, c, 3, func(engine.WorkEvent) (int, bool) { return 0, false })
	require.NoError(t, err)
	assert.False(t, c.WorkedToday)
	assert.Contains(t, out.String(), "left the office early")
}

func TestJournalMarkdown(t *testing.T) {
	c := newTestCharacter()
	require.NoError(t, c.Smoke())
	md := journalMarkdown(c, 5)

	assert.Contains(t, md, "# Artem, day 1")
	assert.Contains(t, md, "## Habits")
	assert.Contains(t, md, "**smoking**")
	assert.Contains(t, md, "## Recent events")
}
