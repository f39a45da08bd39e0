package root

import (
	"context"
	"database/sql"
	"os"

	"github.com/kezhick/Depooper/internal/engine"
	"github.com/kezhick/Depooper/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath(cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(db,
		engine.WithServiceLogger(cfg.NewLogger(os.Stderr)),
		engine.WithServiceRand(engine.NewRand(cfg.RNG.Seed)),
	)
	return svc, cleanup, nil
}

// withCharacter loads the configured slot, runs fn and saves the result,
// even when fn fails, so refusals still reach the event log.
func withCharacter(ctx context.Context, fn func(svc *engine.Service, c *engine.Character) error) error {
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := svc.Load(ctx, cfg.Storage.Slot)
	if err != nil {
		return err
	}
	runErr := fn(svc, c)
	if err := svc.Save(ctx, cfg.Storage.Slot, c); err != nil {
		return err
	}
	return runErr
}
