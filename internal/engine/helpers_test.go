package engine

import (
	"io"
	"log/slog"
	"testing"
)

// scriptedRand replays fixed draws. Once exhausted, Float64 returns a value
// above every chance in the game and IntN returns 0.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.999
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCharacter(t *testing.T, r *scriptedRand, opts ...Option) *Character {
	t.Helper()
	if r == nil {
		r = &scriptedRand{}
	}
	base := []Option{WithRand(r), WithLogger(quietLogger())}
	return NewCharacter(append(base, opts...)...)
}
