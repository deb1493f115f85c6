package bootstrap

import (
	"log/slog"

	"github.com/osse101/FarmCalc_Go/internal/config"
	"github.com/osse101/FarmCalc_Go/internal/logger"
)

// SetupLogger initializes the default slog logger from the application configuration.
// Source locations are only added in development.
func SetupLogger(cfg *config.Config) *slog.Logger {
	addSource := cfg.Environment == config.EnvironmentDev || cfg.Environment == "development"

	log := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	log.Info(LogMsgLoggingInitialized,
		"level", cfg.LogLevel,
		"format", cfg.LogFormat,
		"environment", cfg.Environment)
	log.Debug("Configuration loaded",
		"store_driver", cfg.StoreDriver,
		"port", cfg.Port,
		"price_seed_mode", cfg.PriceSeedMode)

	return log
}
