package config

import "errors"

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Environment names
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "prod"
)

// envNames maps struct fields to their environment variables for error messages
var envNames = map[string]string{
	"DiscordToken":      "DISCORD_BOT_TOKEN",
	"Port":              "PORT",
	"ShutdownTimeout":   "SHUTDOWN_TIMEOUT",
	"KeepAliveURL":      "KEEPALIVE_URL",
	"KeepAliveInterval": "KEEPALIVE_INTERVAL",
	"KeepAliveTimeout":  "KEEPALIVE_TIMEOUT",
	"CacheSize":         "CALC_CACHE_SIZE",
	"LogLevel":          "LOG_LEVEL",
	"LogFormat":         "LOG_FORMAT",
}
