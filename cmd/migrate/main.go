package main

import (
	"context"
	"flag"

	"categories-api/internal/config"
	"categories-api/internal/db"
	"categories-api/internal/logger"
	"categories-api/internal/migrate"
)

func main() {
	var down bool
	flag.BoolVar(&down, "down", false, "Roll back every applied migration")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{})
		fallback.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(logger.Config{Env: cfg.Env, Level: cfg.LogLevel}).
		With().Str("component", "migrate").Logger()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, db.Options{Logger: &log})
	if err != nil {
		log.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if down {
		if err := migrate.Down(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("roll back migrations")
		}
		log.Info().Msg("migrations rolled back")
		return
	}

	if err := migrate.Apply(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	version, dirty, ok, err := migrate.Version(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("read schema version")
	}
	if !ok {
		log.Info().Msg("migrations applied, no version recorded")
		return
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migrations applied")
}
