package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Console ConsoleConfig
	Storage StorageConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int      `env:"APP_PORT" envDefault:"8080"`
	Env                string   `env:"APP_ENV" envDefault:"development"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	MetricsEnabled     bool     `env:"METRICS_ENABLED" envDefault:"true"`
}

// BackendConfig points at the upstream HR REST API.
type BackendConfig struct {
	BaseURL string `env:"BACKEND_BASE_URL" envDefault:"http://localhost:5000"`
	// Zero disables the client timeout.
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"0s"`
}

type ConsoleConfig struct {
	ToastDismissAfter   time.Duration `env:"TOAST_DISMISS_AFTER" envDefault:"4s"`
	TablePageSize       int           `env:"TABLE_PAGE_SIZE" envDefault:"10"`
	AttendanceLateAfter string        `env:"ATTENDANCE_LATE_AFTER" envDefault:"09:30"`
}

type StorageConfig struct {
	BasePath       string        `env:"STORAGE_BASE_PATH" envDefault:"./storage"`
	ImportStageTTL time.Duration `env:"IMPORT_STAGE_TTL" envDefault:"30m"`
}

// Load reads an optional .env file and parses the environment into Config.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadEnvFiles(files []string) error {
	existing := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		slog.Debug("No .env file found, using process environment", "tried", files)
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load %s: %w", strings.Join(existing, ", "), err)
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs []error

	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be between 1 and 65535"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("BACKEND_BASE_URL must be an absolute URL"))
	}
	if c.Backend.Timeout < 0 {
		errs = append(errs, fmt.Errorf("BACKEND_TIMEOUT must not be negative"))
	}

	if c.Console.ToastDismissAfter <= 0 {
		errs = append(errs, fmt.Errorf("TOAST_DISMISS_AFTER must be positive"))
	}
	if c.Console.TablePageSize <= 0 {
		errs = append(errs, fmt.Errorf("TABLE_PAGE_SIZE must be positive"))
	}
	if _, err := time.Parse("15:04", c.Console.AttendanceLateAfter); err != nil {
		errs = append(errs, fmt.Errorf("ATTENDANCE_LATE_AFTER must be HH:MM"))
	}

	if c.Storage.BasePath == "" {
		errs = append(errs, fmt.Errorf("STORAGE_BASE_PATH is required"))
	}
	if c.Storage.ImportStageTTL <= 0 {
		errs = append(errs, fmt.Errorf("IMPORT_STAGE_TTL must be positive"))
	}

	return errors.Join(errs...)
}

// SlogLevel maps LOG_LEVEL onto a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q is not a valid level", c.App.LogLevel)
	}
	return level, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
