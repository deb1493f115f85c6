// Command farmcalc ranks crops and edits preferences from the terminal.
// It keeps preferences in a local SQLite file unless STORE_DRIVER says otherwise.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/osse101/FarmCalc_Go/internal/bootstrap"
	"github.com/osse101/FarmCalc_Go/internal/config"
	"github.com/osse101/FarmCalc_Go/internal/event"
	"github.com/osse101/FarmCalc_Go/internal/logger"
	"github.com/osse101/FarmCalc_Go/internal/planner"
	"github.com/osse101/FarmCalc_Go/internal/preferences"
)

func main() {
	_ = godotenv.Load()

	registry := NewRegistry()
	registerCommands(registry)

	if len(os.Args) < 2 {
		registry.PrintHelp(os.Stdout)
		os.Exit(1)
	}
	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp(os.Stdout)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cmd, os.Args[2:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			PrintError("%v", err)
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd Command, args []string, out io.Writer) error {
	// the CLI keeps its state on disk unless told otherwise
	if os.Getenv("STORE_DRIVER") == "" {
		_ = os.Setenv("STORE_DRIVER", config.StoreDriverSQLite)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// logs go to stderr so tables stay pipeable
	logger.InitLoggerWithWriter(logger.NewConfig(
		getEnv("LOG_LEVEL", "warn"), cfg.LogFormat, logger.CLIServiceName, cfg.Version, cfg.Environment, false,
	), os.Stderr)

	svc, closeFn, err := openPlanner(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	return cmd.Run(ctx, &Env{Out: out, Planner: svc}, args)
}

// openPlanner builds a planner on the configured store. Events stay in process.
func openPlanner(ctx context.Context, cfg *config.Config) (planner.Service, func(), error) {
	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}
	seedMode, err := preferences.ParseSeedMode(cfg.PriceSeedMode)
	if err != nil {
		return nil, nil, err
	}
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	svc := planner.NewService(cat, store, event.NewMemoryBus(), planner.Options{
		SeedMode:         seedMode,
		SessionCacheSize: cfg.SessionCacheSize,
		SessionTTL:       cfg.SessionTTL,
	})
	closeFn := func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close preference store", "error", err)
		}
	}
	return svc, closeFn, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
