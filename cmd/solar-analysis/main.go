package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/i474232898/solar-potential-analysis/internal/api/http"
	"github.com/i474232898/solar-potential-analysis/internal/config"
	"github.com/i474232898/solar-potential-analysis/internal/scheduler"
	"github.com/i474232898/solar-potential-analysis/internal/solar"
	"github.com/i474232898/solar-potential-analysis/internal/solar/providers"
	"github.com/i474232898/solar-potential-analysis/internal/store"
)

func main() {
	// Load configuration; the logger depends on DEV_MODE from it.
	cfg, err := config.Load(nil)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := config.NewLogger(cfg.DevMode)
	slog.SetDefault(log)

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// One fetcher for every call site so its limits are global.
	fetcher := providers.NewFetcher(providers.FetcherConfig{
		Client:           httpClient,
		MaxConcurrent:    cfg.Fetch.MaxConcurrent,
		MinSpacing:       cfg.Fetch.MinSpacing,
		Retry:            cfg.RetryPolicy(),
		BreakerThreshold: cfg.Fetch.BreakerThreshold,
		BreakerTimeout:   cfg.Fetch.BreakerTimeout,
		UserAgent:        cfg.UserAgent,
	}, log)
	provider := providers.NewPVGISProvider(fetcher, cfg.Queries)

	service := solar.NewService(provider, solar.ServiceConfig{
		Economics:           cfg.Economics,
		Suitability:         cfg.Suitability,
		LocationParallelism: cfg.LocationParallelism,
		TypicalYear:         cfg.TypicalYearEnabled,
	}, log)

	reports := store.NewMemoryStore(cfg.ReportMaxHistory, cfg.ReportMaxAge)

	sched := scheduler.New(cfg.RefreshInterval, service, reports, log)
	if err := sched.Start(); err != nil {
		log.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	// A full batch over 81 provinces takes minutes, so the write timeout stays open.
	app := fiber.New(fiber.Config{
		AppName:               "solar-analysis",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  "solar-analysis",
			"provider": provider.Name(),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes.
	httpapi.RegisterRoutes(app, service, reports)

	go func() {
		log.Info("starting server", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("error during shutdown", "error", err)
	}
}
