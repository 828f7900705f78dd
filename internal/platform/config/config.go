package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                     string
	Environment              string
	Version                  string
	LogLevel                 string
	LogFormat                string
	RateTablesDir            string
	RateTablesWatch          bool
	DefaultFiscalYear        int
	DatabaseURL              string
	RunMigrations            bool
	MigrationsDir            string
	RateTableRefreshInterval time.Duration
	MaxBodyBytes             int64
	RateLimitPerMinute       int
	MetricsEnabled           bool
	ShutdownTimeout          time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:                     getEnv("APP_ADDR", ":8080"),
		Environment:              getEnv("APP_ENV", "development"),
		Version:                  getEnv("APP_VERSION", "dev"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		LogFormat:                getEnv("LOG_FORMAT", "json"),
		RateTablesDir:            getEnv("RATE_TABLES_DIR", ""),
		RateTablesWatch:          getEnvBool("RATE_TABLES_WATCH", false),
		DefaultFiscalYear:        getEnvInt("DEFAULT_FISCAL_YEAR", 0),
		DatabaseURL:              getEnv("DATABASE_URL", ""),
		RunMigrations:            getEnvBool("RUN_MIGRATIONS", true),
		MigrationsDir:            getEnv("MIGRATIONS_DIR", "migrations"),
		RateTableRefreshInterval: getEnvDuration("RATE_TABLE_REFRESH_INTERVAL", 15*time.Minute),
		MaxBodyBytes:             int64(getEnvInt("MAX_BODY_BYTES", 65536)),
		RateLimitPerMinute:       getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		MetricsEnabled:           getEnvBool("METRICS_ENABLED", true),
		ShutdownTimeout:          getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR must not be empty")
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console")
	}
	if c.DefaultFiscalYear < 0 {
		return fmt.Errorf("DEFAULT_FISCAL_YEAR must not be negative")
	}
	if c.RateTablesWatch && strings.TrimSpace(c.RateTablesDir) == "" {
		return fmt.Errorf("RATE_TABLES_DIR must be set when RATE_TABLES_WATCH is true")
	}
	if c.DatabaseURL != "" && c.RateTableRefreshInterval < 0 {
		return fmt.Errorf("RATE_TABLE_REFRESH_INTERVAL must not be negative")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}
