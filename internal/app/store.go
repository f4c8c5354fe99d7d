package app

import (
	"context"
	"fmt"

	"oceanbreeze/internal/config"
	"oceanbreeze/internal/database"
	"oceanbreeze/internal/storage"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// OpenKV connects the backend named by cfg.StoreDriver. The returned func releases it.
func OpenKV(ctx context.Context, cfg *config.Config) (storage.KV, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite, config.DriverPostgres:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		if err := migrateOrClose(db, storage.Migrate); err != nil {
			return nil, nil, err
		}
		closeFn := func() { closeDB(db) }
		log.Info().Str("driver", cfg.StoreDriver).Str("namespace", cfg.KeyNamespace).Msg("kv store ready")
		return storage.NewGormKV(db, cfg.KeyNamespace), closeFn, nil

	case config.DriverRedis:
		client, err := storage.NewRedisClient(ctx, storage.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.RedisAddr).Str("namespace", cfg.KeyNamespace).Msg("kv store ready")
		return storage.NewRedisKV(client, cfg.KeyNamespace), func() { _ = client.Close() }, nil

	case config.DriverMemory:
		log.Warn().Msg("using in-memory kv store; data is lost on exit")
		return storage.NewMemoryKV(), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// migrateOrClose runs migrate and closes db when it fails.
func migrateOrClose(db *gorm.DB, migrate func(*gorm.DB) error) error {
	if err := migrate(db); err != nil {
		closeDB(db)
		return fmt.Errorf("migrate kv table: %w", err)
	}
	return nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
