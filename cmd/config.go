package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // distroless images ship without zoneinfo

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrSecretKeyIsRequired = errors.New("SECRET_KEY is required")

type Config struct {
	HTTPPort string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string

	Location       *time.Location
	SecretKey      string
	AccessTokenTTL time.Duration

	LogLevel              string
	BacklogReportSchedule string
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load(".env")
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from lookup, applying defaults.
func ConfigFromEnv(lookup func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if value := strings.TrimSpace(lookup(key)); value != "" {
			return value
		}
		return fallback
	}

	location, err := time.LoadLocation(get("TIMEZONE", "Asia/Yekaterinburg"))
	if err != nil {
		return Config{}, fmt.Errorf("TIMEZONE: %w", err)
	}
	ttl, err := time.ParseDuration(get("ACCESS_TOKEN_TTL", "240m"))
	if err != nil {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_TTL: %w", err)
	}

	cfg := Config{
		HTTPPort:              get("HTTP_PORT", "8000"),
		DBDriver:              strings.ToLower(get("DB_DRIVER", DriverPostgres)),
		DBHost:                get("DB_HOST", "localhost"),
		DBPort:                get("DB_PORT", "5432"),
		DBUser:                get("POSTGRES_USER", "postgres"),
		DBPassword:            get("POSTGRES_PASSWORD", ""),
		DBName:                get("DB_NAME", "courier_service"),
		DBSslMode:             get("DB_SSLMODE", "disable"),
		SQLitePath:            get("SQLITE_PATH", "courier_service.db"),
		Location:              location,
		SecretKey:             lookup("SECRET_KEY"),
		AccessTokenTTL:        ttl,
		LogLevel:              strings.ToLower(get("LOG_LEVEL", "info")),
		BacklogReportSchedule: get("BACKLOG_REPORT_SCHEDULE", ""),
	}

	if cfg.SecretKey == "" {
		return Config{}, ErrSecretKeyIsRequired
	}
	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return Config{}, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, cfg.DBDriver)
	}
	return cfg, nil
}

// PostgresDSN is the connection string for gorm.io/driver/postgres.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LogLevels maps LOG_LEVEL onto slog and the echo logger. Unknown values mean info.
func (c Config) LogLevels() (slog.Level, log.Lvl) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, log.DEBUG
	case "warn", "warning":
		return slog.LevelWarn, log.WARN
	case "error":
		return slog.LevelError, log.ERROR
	default:
		return slog.LevelInfo, log.INFO
	}
}
