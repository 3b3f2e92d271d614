package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Dutt123/ossvacationtracker/internal/config"
	"github.com/Dutt123/ossvacationtracker/internal/repository"
	"github.com/Dutt123/ossvacationtracker/internal/seed"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	force := flag.Bool("force", false, "overwrite an existing data file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("could not load configuration", "error", err)
		os.Exit(1)
	}

	if _, err := os.Stat(cfg.Store.Path); err == nil && !*force {
		logger.Error("data file already exists, pass -force to overwrite", "path", cfg.Store.Path)
		os.Exit(1)
	}

	repo := repository.NewRepository(cfg)
	if err := repo.Replace(seed.DefaultDocument()); err != nil {
		logger.Error("could not write seed data", "error", err)
		os.Exit(1)
	}

	logger.Info("seed data written", "path", cfg.Store.Path)
}
