package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"categories-api/internal/config"
	"categories-api/internal/db"
	"categories-api/internal/importer"
	"categories-api/internal/logger"
	categoryrepo "categories-api/internal/repository/category"
	store "categories-api/internal/store/category"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a category CSV file with a header row")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{})
		fallback.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(logger.Config{Env: cfg.Env, Level: cfg.LogLevel}).
		With().Str("component", "importer").Logger()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, db.Options{Logger: &log, Trace: cfg.DBTrace})
	if err != nil {
		log.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatal().Err(err).Msg("open file")
	}
	defer f.Close()

	repo := categoryrepo.New(store.NewPostgres(pool, &log, cfg.DefaultPerPage), &log)
	imp := importer.NewCSVImporter(f, repo)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Int("imported", count).Msg("import failed")
	}

	fmt.Printf("Imported %d categories in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
