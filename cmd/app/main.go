package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/FarmCalc_Go/internal/bootstrap"
	"github.com/osse101/FarmCalc_Go/internal/config"
	"github.com/osse101/FarmCalc_Go/internal/planner"
	"github.com/osse101/FarmCalc_Go/internal/preferences"
	"github.com/osse101/FarmCalc_Go/internal/server"
	"github.com/osse101/FarmCalc_Go/internal/stream"
)

// @title           FarmCalc API
// @version         1.0
// @description     Crop profitability planner. Ranks crops by profit per hour for the caller's effort, level, land size and market prices.
// @BasePath        /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "farmcalc: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return fmt.Errorf("environment validation failed: %w", err)
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		_ = store.Close()
		return err
	}

	seedMode, err := preferences.ParseSeedMode(cfg.PriceSeedMode)
	if err != nil {
		_ = store.Close()
		return err
	}

	svc := planner.NewService(cat, store, publisher, planner.Options{
		SeedMode:         seedMode,
		SessionCacheSize: cfg.SessionCacheSize,
		SessionTTL:       cfg.SessionTTL,
	})

	hub := stream.NewHub()
	hub.Start()

	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: eventBus,
		Hub:      hub,
		Rankings: svc,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		CatalogVersion: cat.Version(),
	}, svc, hub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Hub:                hub,
		ResilientPublisher: publisher,
		Store:              store,
	})
	return err
}
