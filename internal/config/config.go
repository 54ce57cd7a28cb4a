package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	FixturesFromFile     = "file"
	FixturesFromPostgres = "postgres"
)

type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	DefaultUserID string `mapstructure:"DEFAULT_USER_ID"`

	FixturesSource string `mapstructure:"FIXTURES_SOURCE"`
	FixturesPath   string `mapstructure:"FIXTURES_PATH"`
	FixturesDSN    string `mapstructure:"FIXTURES_DSN"`

	RedisAddr         string        `mapstructure:"REDIS_ADDR"`
	RedisPassword     string        `mapstructure:"REDIS_PASSWORD"`
	RateLimitRequests int           `mapstructure:"RATE_LIMIT_REQUESTS"`
	RateLimitWindow   time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`

	LogLevel    string `mapstructure:"LOG_LEVEL"`
	Environment string `mapstructure:"ENVIRONMENT"`
}

var defaults = map[string]any{
	"SERVER_PORT":         "4000",
	"DEFAULT_USER_ID":     "1",
	"FIXTURES_SOURCE":     FixturesFromFile,
	"FIXTURES_PATH":       "./fixtures/fixtures.json",
	"FIXTURES_DSN":        "",
	"REDIS_ADDR":          "",
	"REDIS_PASSWORD":      "",
	"RATE_LIMIT_REQUESTS": 60,
	"RATE_LIMIT_WINDOW":   "1m",
	"LOG_LEVEL":           "info",
	"ENVIRONMENT":         "development",
}

// Load reads configuration from the environment, after merging an optional
// .env file from the working directory.
func Load() (*Config, error) {
	// a missing .env is fine, real environment variables still apply
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if strings.TrimSpace(c.DefaultUserID) == "" {
		return fmt.Errorf("DEFAULT_USER_ID is required")
	}

	switch c.FixturesSource {
	case FixturesFromFile:
		if c.FixturesPath == "" {
			return fmt.Errorf("FIXTURES_PATH is required")
		}
	case FixturesFromPostgres:
		if c.FixturesDSN == "" {
			return fmt.Errorf("FIXTURES_DSN is required when FIXTURES_SOURCE is %q", FixturesFromPostgres)
		}
	default:
		return fmt.Errorf("FIXTURES_SOURCE must be %q or %q, got %q", FixturesFromFile, FixturesFromPostgres, c.FixturesSource)
	}

	if c.RedisAddr != "" {
		if c.RateLimitRequests <= 0 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive")
		}
		if c.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
		}
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
