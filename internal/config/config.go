package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the bot configuration
type Config struct {
	// Discord
	DiscordToken       string `env:"DISCORD_BOT_TOKEN" validate:"required"`
	DiscordAppID       string `env:"DISCORD_APP_ID"`
	DiscordGuildID     string `env:"DISCORD_GUILD_ID"`
	ForceCommandUpdate bool   `env:"DISCORD_FORCE_COMMAND_UPDATE" envDefault:"false"`

	// Liveness server
	Port            int           `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s" validate:"min=1s"`

	// Keep-alive; an empty URL disables the loop
	KeepAliveURL      string        `env:"KEEPALIVE_URL" validate:"omitempty,url"`
	KeepAliveInterval time.Duration `env:"KEEPALIVE_INTERVAL" envDefault:"5m" validate:"min=10s"`
	KeepAliveTimeout  time.Duration `env:"KEEPALIVE_TIMEOUT" envDefault:"10s" validate:"min=1s"`

	// Calculation cache; size 0 disables it
	CacheSize int           `env:"CALC_CACHE_SIZE" envDefault:"512" validate:"min=0"`
	CacheTTL  time.Duration `env:"CALC_CACHE_TTL" envDefault:"10m"`

	// Logging; empty level and format fall back to the environment's preset
	LogLevel    string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `env:"LOG_FORMAT" validate:"omitempty,oneof=text json"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"magic-crit-bot"`
	Version     string `env:"VERSION" envDefault:"dev"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse reads the environment into a Config without validating it
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// KeepAliveEnabled reports whether the self-ping loop should run
func (c *Config) KeepAliveEnabled() bool {
	return c.KeepAliveURL != ""
}

// ListenAddr returns the liveness server address
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsDevelopment reports whether the bot runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDev || c.Environment == EnvironmentDevelopment
}
