package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

const (
	defaultHTTPAddr     = ":8080"
	defaultStoreDriver  = DriverSQLite
	defaultDatabaseURL  = "oceanbreeze.db"
	defaultRedisAddr    = "localhost:6379"
	defaultKeyNamespace = "default"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultJWTTTL       = "24h"
	defaultLogLevel     = "info"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	StoreDriver   string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyNamespace  string
	JWTSecret     string
	JWTTTL        time.Duration
	CORSOrigins   []string
	LogLevel      string
}

// Load reads the process environment. Call godotenv.Load first to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(getEnv("STORE_DRIVER", defaultStoreDriver)))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.RedisAddr = strings.TrimSpace(getEnv("REDIS_ADDR", defaultRedisAddr))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.KeyNamespace = strings.TrimSpace(getEnv("KEY_NAMESPACE", defaultKeyNamespace))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel)))
	cfg.CORSOrigins = splitList(os.Getenv("CORS_ORIGINS"))

	var err error
	cfg.RedisDB, err = parseIntEnv("REDIS_DB", "0")
	if err != nil {
		return nil, err
	}

	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.StoreDriver {
	case DriverSQLite, DriverPostgres:
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must be set for STORE_DRIVER=%s", cfg.StoreDriver)
		}
	case DriverRedis:
		if cfg.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR must be set for STORE_DRIVER=redis")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be one of: sqlite, postgres, redis, memory")
	}

	if cfg.KeyNamespace == "" {
		return fmt.Errorf("KEY_NAMESPACE must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.RedisDB < 0 {
		return fmt.Errorf("REDIS_DB must be >= 0")
	}

	if cfg.IsProdLike() {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.StoreDriver == DriverMemory {
			return fmt.Errorf("in prod/release STORE_DRIVER=memory is not allowed")
		}
	}

	return nil
}

func (c *Config) IsProdLike() bool {
	env := strings.ToLower(strings.TrimSpace(c.AppEnv))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
