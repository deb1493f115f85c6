package config

import "time"

// Store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// Price seeding modes, mirrored from the preferences package
const (
	SeedModeMissing = "missing"
	SeedModeAll     = "all"
)

// Environments
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "production"
)

// Defaults
const (
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultServiceName       = "farmcalc"
	DefaultStoreDriver       = StoreDriverMemory
	DefaultSQLitePath        = "data/farmcalc.db"
	DefaultDBName            = "farmcalc"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultSessionCacheSize  = 1024
	DefaultSessionTTL        = 30 * time.Minute
	DefaultMaxBodyBytes      = 1 << 20
	DefaultShutdownTimeout   = 10 * time.Second
)
