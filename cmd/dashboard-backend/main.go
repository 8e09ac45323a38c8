package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/i474232898/dashboard-backend/internal/api/http"
	"github.com/i474232898/dashboard-backend/internal/config"
	"github.com/i474232898/dashboard-backend/internal/scheduler"
	"github.com/i474232898/dashboard-backend/internal/store"
	"github.com/i474232898/dashboard-backend/internal/weather"
	"github.com/i474232898/dashboard-backend/internal/weather/providers"
)

func main() {
	// Load configuration (.env first, then environment).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls; the timeout keeps a hung
	// upstream from holding a request forever.
	httpClient := &http.Client{
		Timeout: cfg.UpstreamTimeout,
	}

	provider := providers.NewOpenMeteoProvider(httpClient, cfg.OpenMeteoURL, providers.BreakerConfig{
		MaxFailures: cfg.BreakerMaxFailures,
		OpenTimeout: cfg.BreakerOpenTimeout,
	})

	probes := store.NewMemoryStore(cfg.ProbeMaxHistory)
	service := weather.NewService(provider, probes)

	// Scheduler that periodically probes the upstream provider.
	sched := scheduler.New(cfg.ProbeLocations, cfg.ProbeInterval, cfg.UpstreamTimeout, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := httpapi.NewApp(httpapi.Options{
		AllowedOrigins: cfg.AllowedOrigins,
	})
	httpapi.RegisterRoutes(app, service)

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := httpapi.Serve(ctx, app, cfg.Addr(), 10*time.Second); err != nil {
		log.Fatalf("ERROR: server stopped: %v", err)
	}
}
