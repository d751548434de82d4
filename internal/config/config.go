package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds everything the API reads from the environment.
type Config struct {
	Env      string `env:"ENV" envDefault:"production"`
	Port     string `env:"PORT" envDefault:"8080"`
	AppDebug bool   `env:"APP_DEBUG" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	DB        DatabaseConfig
	Cache     CacheConfig
	Telemetry TelemetryConfig

	SettingsRefreshInterval time.Duration `env:"SETTINGS_REFRESH_INTERVAL" envDefault:"5m"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

type DatabaseConfig struct {
	Driver      string `env:"DB_DRIVER" envDefault:"mysql"`
	DSN         string `env:"DB_DSN"`
	Host        string `env:"DB_HOST" envDefault:"localhost"`
	Port        string `env:"DB_PORT"`
	User        string `env:"DB_USER" envDefault:"root"`
	Password    string `env:"DB_PASSWORD"`
	Name        string `env:"DB_NAME" envDefault:"jippymart"`
	SSLMode     string `env:"DB_SSLMODE" envDefault:"disable"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
}

type CacheConfig struct {
	Driver        string        `env:"CACHE_DRIVER" envDefault:"redis"`
	Prefix        string        `env:"CACHE_PREFIX" envDefault:"jippymart_cache_"`
	Path          string        `env:"CACHE_PATH" envDefault:"storage/cache"`
	RedisURL      string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	PruneInterval time.Duration `env:"CACHE_PRUNE_INTERVAL" envDefault:"10m"`
}

type TelemetryConfig struct {
	Enabled        bool   `env:"ENABLE_TELEMETRY" envDefault:"false"`
	Endpoint       string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	ServiceName    string `env:"OTEL_SERVICE_NAME" envDefault:"jippymart-api"`
	ServiceVersion string `env:"OTEL_SERVICE_VERSION" envDefault:"1.0.0"`
	Insecure       bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
}

// Load reads .env (when present) and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	switch c.DB.Driver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (expected mysql or postgres)", c.DB.Driver)
	}

	c.Cache.Driver = strings.ToLower(strings.TrimSpace(c.Cache.Driver))
	switch c.Cache.Driver {
	case "redis", "database", "file", "memory":
	default:
		return fmt.Errorf("unsupported CACHE_DRIVER %q", c.Cache.Driver)
	}
	return nil
}

// IsDevelopment reports whether ENV is set to development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// DatabaseDSN returns DB_DSN when set, otherwise a DSN assembled for the
// configured driver.
func (c DatabaseConfig) DatabaseDSN() string {
	if c.DSN != "" {
		return c.DSN
	}

	switch c.Driver {
	case "postgres":
		port := c.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, port, c.SSLMode)
	default:
		port := c.Port
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=false&loc=Local",
			c.User, c.Password, c.Host, port, c.Name)
	}
}
