package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/clubeativo/backend/internal/app/migrations"
	"github.com/clubeativo/backend/internal/bootstrap"
	"github.com/clubeativo/backend/internal/db"
	"github.com/clubeativo/backend/internal/seed"
)

// Standalone seeder. Connects, migrates and seeds demo data, then exits.
// Running it against an already seeded database is a no-op.
func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		os.Exit(1)
	}
	defer database.Close()

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory("migrations"); err != nil {
		lgr.Error().Err(err).Msg("Migrations failed")
		os.Exit(1)
	}

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Seeding failed")
		os.Exit(1)
	}
}
