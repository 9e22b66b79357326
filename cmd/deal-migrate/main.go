package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/martingeoffreyprive-hub/DEAL-sub001/internal/config"
	"github.com/martingeoffreyprive-hub/DEAL-sub001/internal/logger"
	"github.com/martingeoffreyprive-hub/DEAL-sub001/templatestore"
)

func main() {
	down := flag.Int("down", 0, "roll back this many migrations instead of applying pending ones")
	flag.Parse()

	if err := run(*down); err != nil {
		fmt.Fprintf(os.Stderr, "deal-migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(down int) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	if down > 0 {
		return templatestore.RollbackMigrations(cfg.DatabaseURL, down, log)
	}
	return templatestore.RunMigrations(cfg.DatabaseURL, log)
}
