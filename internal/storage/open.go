package storage

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/notebot/internal/config"
	"github.com/at-ishikawa/notebot/internal/database"
)

// Open builds the backend selected by the storage config.
func Open(ctx context.Context, cfg config.StorageConfig) (KeyValueStore, error) {
	switch cfg.Backend {
	case config.StorageBackendFile:
		return NewFileStore(cfg.Directory)
	case config.StorageBackendMemory:
		return NewMemoryStore(), nil
	case config.StorageBackendSQL:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database.Open() > %w", err)
		}
		if err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("database.Migrate() > %w", err)
		}
		store, err := NewSQLStore(db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return store, nil
	case config.StorageBackendRedis:
		rdb, err := dialRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(rdb, cfg.Redis.Prefix), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Backend)
	}
}
