package main

import (
	"flag"
	"os"

	"hrm/cmd/migration/initialize"
	"hrm/cmd/migration/seed"
	"hrm/config"
	"hrm/internal/database"
	"hrm/internal/logger"
)

// Runs schema migrations plus essential-data initialization. Pass -seed to
// also load development fixtures.
func main() {
	log := logger.New("migration")

	withSeed := flag.Bool("seed", false, "seed development data after migrating")
	flag.Parse()

	cfg, err := config.InitConfig()
	if err != nil {
		log.Er("failed to initialize config", err)
		os.Exit(1)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Er("failed to initialize database", err)
		os.Exit(1)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := initialize.InitializeTables(db.SQL, cfg, log); err != nil {
		log.Er("failed to initialize tables", err)
		os.Exit(1)
	}

	if *withSeed {
		if err := seed.Seed(db.SQL, cfg, log); err != nil {
			log.Er("failed to seed database", err)
			os.Exit(1)
		}
	}

	// Cached rows must not outlive a schema or data change.
	if err := db.FlushAllCaches(); err != nil {
		log.Er("failed to flush caches", err)
		os.Exit(1)
	}

	log.Info("migration complete")
}
