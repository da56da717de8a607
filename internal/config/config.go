package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the full runtime configuration, read from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
	Server   ServerConfig
	Lookup   LookupConfig
	Sweep    SweepConfig
}

type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER" envDefault:"postgres"`
	PostgresURL     string        `env:"POSTGRES_URL"`
	SQLitePath      string        `env:"SQLITE_PATH" envDefault:"vivu-connect.db"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
}

type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET"`
}

// LogConfig controls the zap logger. LogPath enables a rotating file sink.
type LogConfig struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	Path       string `env:"LOG_PATH"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"7"`
	Compress   bool   `env:"LOG_COMPRESS" envDefault:"false"`
}

type ServerConfig struct {
	RateLimitPerSec    float64  `env:"RATE_LIMIT_PER_SEC" envDefault:"10"`
	RateLimitBurst     int      `env:"RATE_LIMIT_BURST" envDefault:"20"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type LookupConfig struct {
	CacheTTL time.Duration `env:"LOOKUP_CACHE_TTL" envDefault:"5m"`
}

// SweepConfig controls the optional purge of long-expired check-ins.
type SweepConfig struct {
	Enabled   bool          `env:"SWEEP_ENABLED" envDefault:"false"`
	Interval  time.Duration `env:"SWEEP_INTERVAL" envDefault:"1h"`
	Retention time.Duration `env:"SWEEP_RETENTION" envDefault:"168h"`
}

// Load reads an optional .env file and then parses the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the current environment without touching .env.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.PostgresURL == "" {
			return errors.New("POSTGRES_URL is required when DB_DRIVER=postgres")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Sweep.Enabled && c.Sweep.Interval <= 0 {
		return errors.New("SWEEP_INTERVAL must be positive when the sweeper is enabled")
	}
	return nil
}
