package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"oceanbreeze/internal/app"
	"oceanbreeze/internal/config"
	"oceanbreeze/internal/logger"
	"oceanbreeze/internal/repository"
)

// Clears the active session of a namespace, logging out whoever holds it.
// A running API server keeps its in-memory session until restart.
func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init("oceanbreeze-auth-cleanup", cfg.AppEnv, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	kv, closeKV, err := app.OpenKV(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open kv store")
	}
	defer closeKV()

	store := repository.NewStore(kv)
	session, err := store.LoadSession(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("read session failed")
	}
	if session == nil {
		log.Info().Str("namespace", cfg.KeyNamespace).Msg("no active session")
		return
	}

	if err := store.ClearSession(ctx); err != nil {
		log.Fatal().Err(err).Msg("clear session failed")
	}
	log.Info().Str("namespace", cfg.KeyNamespace).Str("user_id", session.ID).Msg("session cleared")
}
