package config

import (
	"errors"
	"time"

	pkgcfg "github.com/Skotchmaster/product_catalog/pkg/config"
	pkgdb "github.com/Skotchmaster/product_catalog/pkg/db"
)

const DefaultTokenTTL = time.Hour

// Config is loaded once at startup and never mutated afterwards.
type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	DBDriver    string
	DatabaseURL string

	JWTSecret []byte
	TokenTTL  time.Duration

	KafkaBrokers []string
	SeedData     bool
	WriteRoles   []string
}

func Load() (Config, error) {
	cfg := Config{
		ServiceName: pkgcfg.EnvDefault("SERVICE_NAME", "catalog"),
		ServerPort:  pkgcfg.EnvIntDefault("SERVER_PORT", 3000),
		LogLevel:    pkgcfg.EnvDefault("LOG_LEVEL", "info"),

		DBDriver:    pkgcfg.EnvDefault("DB_DRIVER", pkgdb.DriverSQLite),
		DatabaseURL: pkgcfg.EnvDefault("DATABASE_URL", "catalog.sqlite"),

		JWTSecret: []byte(pkgcfg.EnvDefault("JWT_SECRET", "")),
		TokenTTL:  pkgcfg.EnvDurationDefault("JWT_TTL", DefaultTokenTTL),

		KafkaBrokers: pkgcfg.CSV(pkgcfg.EnvDefault("KAFKA_BROKERS", "")),
		SeedData:     pkgcfg.EnvBoolDefault("SEED_DATA", false),
		WriteRoles:   pkgcfg.CSV(pkgcfg.EnvDefault("WRITE_ROLES", "")),
	}

	err := errors.Join(
		pkgcfg.RequireNonEmpty(string(cfg.JWTSecret), "JWT_SECRET"),
		pkgcfg.RequireOneOf(cfg.DBDriver, "DB_DRIVER", pkgdb.DriverPostgres, pkgdb.DriverMySQL, pkgdb.DriverSQLite),
	)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
