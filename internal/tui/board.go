package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kezhick/Depooper/internal/engine"
)

// RunBoard opens the dashboard for slot and blocks until the player quits.
func RunBoard(ctx context.Context, svc *engine.Service, slot string, shiftEvents int, out io.Writer) error {
	m := newBoardModel(ctx, svc, slot, shiftEvents)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
