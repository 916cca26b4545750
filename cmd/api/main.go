package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"categories-api/internal/config"
	"categories-api/internal/db"
	"categories-api/internal/httpserver"
	"categories-api/internal/logger"
	categoryrepo "categories-api/internal/repository/category"
	store "categories-api/internal/store/category"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{})
		fallback.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(logger.Config{Env: cfg.Env, Level: cfg.LogLevel}).
		With().Str("component", "api").Logger()

	ctx := context.Background()
	deps := httpserver.Deps{}

	var categoryStore store.Store
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warn().Msg("using in-memory store, data is lost on restart")
		categoryStore = store.NewMemory(cfg.DefaultPerPage)
	default:
		dbpool, err := db.Connect(ctx, cfg.DBConnString, db.Options{Logger: &log, Trace: cfg.DBTrace})
		if err != nil {
			log.Fatal().Err(err).Msg("connect to db")
		}
		defer dbpool.Close()
		categoryStore = store.NewPostgres(dbpool, &log, cfg.DefaultPerPage)
		deps.DB = dbpool
	}
	deps.CategoryRepo = categoryrepo.New(categoryStore, &log)
	log.Info().Str("store", cfg.StoreDriver).Msg("category store ready")

	srv := httpserver.New(cfg.HTTPAddr, &log, deps, httpserver.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		log.Error().Err(err).Msg("server error")
	}

	shutdown(srv, cfg, &log)
}

func shutdown(srv *httpserver.Server, cfg config.Config, log *zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("server stopped")
}
