package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/validator"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Database    DatabaseConfig
	App         AppConfig
	Collections CollectionsConfig
	JWT         JWTConfig
	CORS        CORSConfig
}

type DatabaseConfig struct {
	Driver      string `env:"DB_DRIVER" envDefault:"postgres"`
	Host        string `env:"DB_HOST" envDefault:"localhost"`
	Port        int    `env:"DB_PORT" envDefault:"5432"`
	User        string `env:"DB_USER" envDefault:"postgres"`
	Password    string `env:"DB_PASSWORD"`
	Name        string `env:"DB_NAME" envDefault:"company_collections"`
	SSLMode     string `env:"DB_SSL_MODE" envDefault:"disable"`
	SQLitePath  string `env:"DB_SQLITE_PATH" envDefault:"data/collections.db"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int    `env:"APP_PORT" envDefault:"8000"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Seed     bool   `env:"APP_SEED" envDefault:"false"`
}

// CollectionsConfig identifies the Liked collection. ID wins over Name when both are set.
type CollectionsConfig struct {
	LikedCollectionID   string `env:"LIKED_COLLECTION_ID"`
	LikedCollectionName string `env:"LIKED_COLLECTION_NAME" envDefault:"Liked Companies"`
}

// JWTConfig holds JWT configuration. An empty secret leaves the write endpoints open.
type JWTConfig struct {
	Secret           string        `env:"JWT_SECRET_KEY"`
	AccessExpiration time.Duration `env:"JWT_ACCESS_EXPIRATION_TIME" envDefault:"1h"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
		slog.Debug("No .env file found, using process environment")
	}

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("DB_SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (supported: postgres, sqlite)", c.Database.Driver)
	}

	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid APP_PORT: %d", c.App.Port)
	}
	if c.Collections.LikedCollectionID == "" && validator.IsEmpty(c.Collections.LikedCollectionName) {
		return fmt.Errorf("LIKED_COLLECTION_ID or LIKED_COLLECTION_NAME is required")
	}
	if c.Collections.LikedCollectionID != "" && !validator.IsValidUUID(c.Collections.LikedCollectionID) {
		return fmt.Errorf("LIKED_COLLECTION_ID must be a UUID")
	}
	if c.JWT.Secret != "" && c.JWT.AccessExpiration <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
