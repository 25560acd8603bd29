package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/edugame/internal/api"
	"github.com/vytor/edugame/internal/config"
	"github.com/vytor/edugame/internal/db"
	"github.com/vytor/edugame/internal/jobs"
	"github.com/vytor/edugame/internal/logger"
	"github.com/vytor/edugame/internal/portal"
	"github.com/vytor/edugame/internal/registry"
	"github.com/vytor/edugame/internal/repository/sqlite"
	"github.com/vytor/edugame/internal/services"
	"github.com/vytor/edugame/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("EduGame Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("portal_base_url=%s", cfg.PortalBaseURL)
	log.Debug("portal_term_path=%s", cfg.PortalTermPath)
	log.Debug("portal_rate_limit=%.2f", cfg.PortalRateLimit)
	log.Debug("portal_timeout=%v", cfg.PortalTimeout)
	log.Debug("portal_config_file=%s", cfg.PortalConfigFile)
	log.Debug("ledger_db_path=%s", cfg.LedgerDBPath)
	log.Debug("ledger_worker_count=%d", cfg.LedgerWorkerCount)
	log.Debug("ledger_queue_size=%d", cfg.LedgerQueueSize)
	log.Debug("leaderboard_cache_ttl=%v", cfg.LeaderboardCacheTTL)

	settings, err := portal.LoadSettings(cfg.PortalConfigFile)
	if err != nil {
		log.Error("failed to load portal settings: %v", err)
		os.Exit(1)
	}
	log.Debug("tracking %d courses", len(settings.Courses))

	client, err := portal.New(portal.Options{
		BaseURL:   cfg.PortalBaseURL,
		TermPath:  cfg.PortalTermPath,
		UserAgent: cfg.PortalUserAgent,
		RateLimit: cfg.PortalRateLimit,
		Timeout:   cfg.PortalTimeout,
		Settings:  settings,
	})
	if err != nil {
		log.Error("failed to create portal client: %v", err)
		os.Exit(1)
	}

	// Open ledger database
	database, err := db.Open(cfg.LedgerDBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	ledgerRepo := sqlite.NewLedgerRepository(database.DB)
	ledgerPool := worker.NewPool(cfg.LedgerWorkerCount, cfg.LedgerQueueSize)
	jobQueue := jobs.NewWorkerQueue(ledgerPool, ledgerRepo)

	// Initialize services
	reg := registry.New()
	srv := &api.Server{
		ScrapeService:      services.NewScrapeService(client, reg, settings, jobQueue),
		GameService:        services.NewGameService(reg, services.DefaultRandomizer(), jobQueue),
		ShopService:        services.NewShopService(reg, jobQueue),
		LeaderboardService: services.NewLeaderboardService(reg, cfg.LeaderboardCacheTTL),
		StudentService:     services.NewStudentService(reg, ledgerRepo),
		Ledger:             database,
	}

	ctx, cancel := context.WithCancel(context.Background())
	ledgerPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Drain queued ledger writes before the database closes.
	log.Debug("stopping ledger pool")
	ledgerPool.Stop()
	cancel()

	log.Info("===========================================")
	log.Info("EduGame Server Stopped")
	log.Info("===========================================")
}
