package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"oceanbreeze/internal/app"
	"oceanbreeze/internal/config"
	"oceanbreeze/internal/logger"
	"oceanbreeze/internal/modules/auth"
	"oceanbreeze/internal/modules/catalog"
	"oceanbreeze/internal/repository"
)

func main() {
	withUsers := flag.Bool("demo-users", false, "also write the demo admin and demo user accounts")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init("oceanbreeze-seed", cfg.AppEnv, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	kv, closeKV, err := app.OpenKV(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open kv store")
	}
	defer closeKV()

	store := repository.NewStore(kv)

	log.Info().Str("namespace", cfg.KeyNamespace).Msg("clearing namespace")
	if err := store.Reset(ctx); err != nil {
		log.Fatal().Err(err).Msg("reset failed")
	}

	now := time.Now().UTC()
	rooms := catalog.DefaultRooms(now)
	if err := store.SaveRooms(ctx, rooms); err != nil {
		log.Fatal().Err(err).Msg("save rooms failed")
	}

	if *withUsers {
		if err := store.SaveUsers(ctx, auth.DemoUsers(now)); err != nil {
			log.Fatal().Err(err).Msg("save users failed")
		}
	}

	log.Info().Int("rooms", len(rooms)).Bool("demo_users", *withUsers).Msg("seed completed")
}
