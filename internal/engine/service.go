package engine

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kezhick/Depooper/internal/storage"
)

// Service ties characters to their save slots.
type Service struct {
	db     *sql.DB
	saves  *storage.SaveRepo
	events *storage.EventRepo
	log    *slog.Logger
	rng    Rand
	now    func() time.Time
}

type ServiceOption func(*Service)

func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) { s.log = l }
}

// WithServiceRand sets the random source attached to every loaded character.
func WithServiceRand(r Rand) ServiceOption {
	return func(s *Service) { s.rng = r }
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

func NewService(db *sql.DB, opts ...ServiceOption) *Service {
	s := &Service{
		db:     db,
		saves:  storage.NewSaveRepo(db),
		events: storage.NewEventRepo(db),
		log:    slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(0)
	}
	return s
}

func (s *Service) SaveRepo() *storage.SaveRepo   { return s.saves }
func (s *Service) EventRepo() *storage.EventRepo { return s.events }

func normalizeSlot(slot string) (string, error) {
	sl := strings.TrimSpace(slot)
	if sl == "" {
		return storage.DefaultSlot, nil
	}
	if strings.ContainsAny(sl, " \t\n") {
		return "", fmt.Errorf("slot %q: whitespace not allowed", slot)
	}
	return sl, nil
}

func (s *Service) newCharacter(name string, d Difficulty) *Character {
	c := NewCharacter(WithRand(s.rng), WithLogger(s.log), WithName(name), WithDifficulty(d))
	c.RunID = uuid.NewString()
	return c
}

// NewGame starts a fresh run in the slot, replacing whatever was saved there.
func (s *Service) NewGame(ctx context.Context, slot, name string, d Difficulty) (*Character, error) {
	slot, err := normalizeSlot(slot)
	if err != nil {
		return nil, err
	}
	if err := s.saves.Delete(ctx, slot); err != nil {
		return nil, err
	}
	c := s.newCharacter(name, d)
	c.logEvent(fmt.Sprintf("A new day begins for %s. Goal: %d days without bad habits.", c.Name, c.GoalDaysTarget))
	if err := s.Save(ctx, slot, c); err != nil {
		return nil, err
	}
	s.log.Info("new game", "slot", slot, "run_id", c.RunID, "difficulty", string(c.Difficulty))
	return c, nil
}

// Load restores the slot's character. An unused slot yields a new default
// character that is not saved until Save is called.
func (s *Service) Load(ctx context.Context, slot string) (*Character, error) {
	slot, err := normalizeSlot(slot)
	if err != nil {
		return nil, err
	}
	meta, err := s.saves.Get(ctx, slot)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		s.log.Info("empty slot, starting new character", "slot", slot)
		return s.newCharacter("", DefaultDifficulty), nil
	}

	kv, err := s.saves.LoadKV(ctx, slot)
	if err != nil {
		return nil, err
	}
	c, restoreErr := Restore(kv, WithRand(s.rng), WithLogger(s.log))
	if restoreErr != nil {
		s.log.Warn("save has malformed values", "slot", slot, "err", restoreErr)
	}
	if c.RunID == "" {
		c.RunID = meta.RunID
	}

	events, err := s.events.List(ctx, slot)
	if err != nil {
		return nil, err
	}
	c.Events = make([]string, 0, len(events))
	for _, e := range events {
		c.Events = append(c.Events, e.Message)
	}
	c.persisted = len(c.Events)

	s.log.Info("loaded", "slot", slot, "run_id", c.RunID, "day", c.Day(), "events", len(c.Events))
	return c, nil
}

// Save writes the snapshot and appends events logged since the last save.
func (s *Service) Save(ctx context.Context, slot string, c *Character) error {
	slot, err := normalizeSlot(slot)
	if err != nil {
		return err
	}
	from := min(c.persisted, len(c.Events))
	fresh := c.Events[from:]

	err = storage.WithTx(ctx, s.db, func(q storage.Querier) error {
		meta := storage.Save{Slot: slot, RunID: c.RunID, Name: c.Name, Day: c.Day()}
		if err := storage.NewSaveRepo(q).Put(ctx, meta, c.Snapshot()); err != nil {
			return err
		}
		return storage.NewEventRepo(q).Append(ctx, slot, from, s.now(), fresh)
	})
	if err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	c.persisted = len(c.Events)
	s.log.Info("saved", "slot", slot, "day", c.Day(), "new_events", len(fresh))
	return nil
}

// RecentEvents returns the last n persisted events of the slot.
func (s *Service) RecentEvents(ctx context.Context, slot string, n int) ([]storage.Event, error) {
	slot, err := normalizeSlot(slot)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return s.events.List(ctx, slot)
	}
	return s.events.Tail(ctx, slot, n)
}

// Slots lists saved slots, most recently played first.
func (s *Service) Slots(ctx context.Context) ([]storage.Save, error) {
	return s.saves.List(ctx)
}
