// Package main is the entry point for the copilot ride-offer decision
// service. It ingests raw text observed in the driver app by three
// producers (accessibility tree walks, notification listeners, screen OCR),
// extracts structured offers, evaluates them against configurable economic
// thresholds and keeps a per-day earnings ledger.
//
// The service follows the same shape as the rest of our fleet tools:
// - Domain modules under internal/modules, each with its repository
// - Explicit wiring in main, no globals
// - HTTP API for producers and the overlay renderer
// - Cron-scheduled maintenance jobs
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aristath/copilot/internal/config"
	"github.com/aristath/copilot/internal/database"
	"github.com/aristath/copilot/internal/events"
	"github.com/aristath/copilot/internal/modules/dedup"
	"github.com/aristath/copilot/internal/modules/ledger"
	ledgerhandlers "github.com/aristath/copilot/internal/modules/ledger/handlers"
	"github.com/aristath/copilot/internal/modules/offers"
	offershandlers "github.com/aristath/copilot/internal/modules/offers/handlers"
	"github.com/aristath/copilot/internal/modules/settings"
	settingshandlers "github.com/aristath/copilot/internal/modules/settings/handlers"
	"github.com/aristath/copilot/internal/pipeline"
	"github.com/aristath/copilot/internal/scheduler"
	"github.com/aristath/copilot/internal/server"
	"github.com/aristath/copilot/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Str("data_dir", cfg.DataDir).Msg("Starting copilot")

	// Databases: config.db (settings), ledger.db (daily stats),
	// cache.db (evaluated-offer feed)
	configDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "config.db"),
		Profile: database.ProfileStandard,
		Name:    "config",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open config database")
	}
	defer func() { _ = configDB.Close() }()

	ledgerDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "ledger.db"),
		Profile: database.ProfileLedger,
		Name:    "ledger",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open ledger database")
	}
	defer func() { _ = ledgerDB.Close() }()

	cacheDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "cache.db"),
		Profile: database.ProfileCache,
		Name:    "cache",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open cache database")
	}
	defer func() { _ = cacheDB.Close() }()

	for _, db := range []*database.DB{configDB, ledgerDB, cacheDB} {
		if err := db.Migrate(); err != nil {
			log.Fatal().Err(err).Str("db", db.Name()).Msg("Failed to migrate database")
		}
	}

	// Repositories and shared state
	settingsRepo := settings.NewRepository(configDB.Conn(), log)
	ledgerRepo := ledger.NewRepository(ledgerDB.Conn(), log)
	offersRepo := offers.NewRepository(cacheDB.Conn(), log)
	dedupStore := dedup.NewStore(cfg.DedupCapacity)
	bus := events.NewBus()

	// Ingest pipeline
	pipe := pipeline.NewService(settingsRepo, ledgerRepo, offersRepo, dedupStore, bus, log)

	// Maintenance jobs
	sched := scheduler.New(log)
	jobs := []struct {
		schedule string
		job      scheduler.Job
	}{
		{"0 0 0 * * *", scheduler.NewRolloverJob(ledgerRepo, bus, log)},
		{"0 0 * * * *", scheduler.NewDedupPruneJob(dedupStore, 24*time.Hour, log)},
		{"0 0 3 * * *", scheduler.NewOffersCleanupJob(offersRepo, time.Duration(cfg.OfferRetentionDays)*24*time.Hour, log)},
	}
	for _, j := range jobs {
		if err := sched.AddJob(j.schedule, j.job); err != nil {
			log.Fatal().Err(err).Str("job", j.job.Name()).Msg("Failed to register job")
		}
	}
	sched.Start()
	defer sched.Stop()

	// HTTP server
	srv := server.New(server.Config{
		Log:              log,
		Cfg:              cfg,
		Pipeline:         pipe,
		Bus:              bus,
		LedgerHandlers:   ledgerhandlers.NewHandler(ledgerRepo, settingsRepo, log),
		SettingsHandlers: settingshandlers.NewHandler(settingsRepo, log),
		OffersHandlers:   offershandlers.NewHandler(offersRepo, log),
		SystemHandlers:   server.NewSystemHandlers(dedupStore, log),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	// Wait for shutdown signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-serverErr:
		log.Error().Err(err).Msg("HTTP server stopped unexpectedly")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Copilot stopped")
}
