package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"petverse/internal/config"
	"petverse/internal/infrastructure/database"
	"petverse/internal/infrastructure/storage"
	"petverse/internal/ports/output"
)

// Storage hands out one KeyValueStore per scope over the configured backend.
type Storage struct {
	forScope func(scope string) output.KeyValueStore
	close    func()
}

// OpenStorage opens the backend named by cfg.StorageDriver.
func OpenStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		mem := storage.NewMemoryStore()
		return &Storage{
			forScope: func(scope string) output.KeyValueStore { return storage.Scoped(mem, scope) },
			close:    func() {},
		}, nil

	case config.StorageBadger:
		db, err := storage.OpenBadger(cfg.BadgerPath)
		if err != nil {
			return nil, err
		}
		log.Info("✅ BadgerDB opened", "path", cfg.BadgerPath)
		return &Storage{
			forScope: func(scope string) output.KeyValueStore { return storage.NewBadgerStore(db, scope) },
			close: func() {
				if err := db.Close(); err != nil {
					log.Warn("closing BadgerDB failed", "error", err)
				}
			},
		}, nil

	case config.StoragePostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, log); err != nil {
			return nil, err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
		return &Storage{
			forScope: func(scope string) output.KeyValueStore { return database.NewKeyValueRepository(pool, scope) },
			close:    pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func (s *Storage) Scope(scope string) output.KeyValueStore {
	return s.forScope(scope)
}

func (s *Storage) Close() {
	s.close()
}
