package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"ratehub/adapters/postgres"
	"ratehub/app"
	"ratehub/internal/api"
	"ratehub/internal/config"
	"ratehub/internal/migration"
	"ratehub/ports"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("[DB] connection failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("[DB] ping failed: %v", err)
	}

	runner := migration.NewRunner()
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("[DB] migration failed: %v", err)
	}
	log.Printf("[DB] schema ready (migration %s)", runner.Version())

	repos := ports.RateRepositories{
		Air:    postgres.NewAirRateRepository(db),
		SeaFcl: postgres.NewSeaFclRateRepository(db),
		SeaLcl: postgres.NewSeaLclRateRepository(db),
	}

	server := api.NewServer(
		app.NewImportService(repos, cfg.Import.BulkThreshold),
		app.NewRateQueryService(repos, cfg.Query.MaxFetch),
		app.NewLookupService(repos),
		app.NewStatsService(repos, cfg.Query.MaxFetch),
		app.NewAdminService(repos),
		cfg.Server.DeletePassword,
	)

	addr := ":" + cfg.Server.Port
	log.Printf("[Server] listening on %s", addr)
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		log.Fatalf("[Server] %v", err)
	}
}
