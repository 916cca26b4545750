package main

import (
	"context"

	"categories-api/internal/config"
	"categories-api/internal/db"
	"categories-api/internal/logger"
	"categories-api/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{})
		fallback.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(logger.Config{Env: cfg.Env, Level: cfg.LogLevel}).
		With().Str("component", "seed").Logger()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, db.Options{Logger: &log})
	if err != nil {
		log.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	n, err := seed.Apply(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("seed apply")
	}

	log.Info().Int("inserted", n).Msg("seed applied")
}
