package engine

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kezhick/Depooper/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db, WithServiceLogger(quietLogger()), WithServiceRand(&scriptedRand{}))
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func TestLoadEmptySlotStartsNewCharacter(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	c, err := svc.Load(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, c.Name)
	assert.NotEmpty(t, c.RunID)

	slots, err := svc.Slots(ctx)
	require.NoError(t, err)
	assert.Empty(t, slots, "loading does not create a save")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	c, err := svc.NewGame(ctx, "", "Masha", DifficultyHardcore)
	require.NoError(t, err)
	runID := c.RunID
	require.NotEmpty(t, runID)

	require.NoError(t, c.DrinkCoffee(CoffeeInstant))
	c.Habits[HabitOvereating] = HabitState{Active: false, LastAttemptDay: 0}
	require.NoError(t, c.IncrementQuest(QuestWorkIncidents, 2))
	require.NoError(t, svc.Save(ctx, "", c))

	got, err := svc.Load(ctx, storage.DefaultSlot)
	require.NoError(t, err)
	assert.Equal(t, runID, got.RunID)
	assert.Equal(t, "Masha", got.Name)
	assert.Equal(t, DifficultyHardcore, got.Difficulty)
	assert.Equal(t, c.Alertness, got.Alertness)
	assert.Equal(t, c.Rubles, got.Rubles)
	assert.False(t, got.HasHabit(HabitOvereating))
	assert.Equal(t, 2, got.Quests[QuestWorkIncidents].Progress)
	assert.Equal(t, c.Events, got.Events)

	meta, err := svc.SaveRepo().Get(ctx, storage.DefaultSlot)
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "Masha", meta.Name)
	assert.Equal(t, 1, meta.Day)
}

func TestSaveAppendsOnlyNewEvents(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	c, err := svc.NewGame(ctx, "s1", "", DifficultyNormal)
	require.NoError(t, err)
	require.NoError(t, svc.Save(ctx, "s1", c))
	n, err := svc.EventRepo().Count(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, len(c.Events), n)

	require.NoError(t, c.Smoke())
	require.NoError(t, svc.Save(ctx, "s1", c))
	require.NoError(t, svc.Save(ctx, "s1", c))

	n, err = svc.EventRepo().Count(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, len(c.Events), n)

	tail, err := svc.RecentEvents(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	assert.Equal(t, c.Events[len(c.Events)-1], tail[1].Message)
}

func TestNewGameReplacesSlot(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	first, err := svc.NewGame(ctx, "s1", "", DifficultyNormal)
	require.NoError(t, err)
	require.NoError(t, first.Smoke())
	require.NoError(t, svc.Save(ctx, "s1", first))

	second, err := svc.NewGame(ctx, "s1", "", DifficultyNormal)
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, second.RunID)

	got, err := svc.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, second.RunID, got.RunID)
	assert.Zero(t, got.CigarettesToday)
	assert.Len(t, got.Events, 1)
}

func TestSlotNameValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	_, err := svc.Load(context.Background(), "two words")
	assert.Error(t, err)
}
