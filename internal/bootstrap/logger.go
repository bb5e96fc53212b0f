package bootstrap

import (
	"io"
	"log/slog"
	"os"

	"github.com/osse101/MagicCritBot_Go/internal/config"
	"github.com/osse101/MagicCritBot_Go/internal/logger"
)

// SetupLogger installs the process logger described by cfg on stdout
func SetupLogger(cfg *config.Config) {
	SetupLoggerWithWriter(cfg, os.Stdout)
}

// SetupLoggerWithWriter installs the process logger writing to w and logs
// the startup banner. Development environments start from debug text logs,
// everything else from info JSON; LOG_LEVEL and LOG_FORMAT override either.
func SetupLoggerWithWriter(cfg *config.Config, w io.Writer) {
	logCfg := logger.ProductionConfig()
	if cfg.IsDevelopment() {
		logCfg = logger.DevelopmentConfig()
	}
	logCfg = logCfg.
		WithService(cfg.ServiceName, cfg.Version, cfg.Environment).
		WithOverrides(cfg.LogLevel, cfg.LogFormat)
	logger.InitLoggerWithWriter(logCfg, w)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel())
	slog.Info(LogMsgStartingBot,
		"environment", cfg.Environment,
		"log_format", logCfg.Format,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"guild_id", cfg.DiscordGuildID,
		"keepalive_url", cfg.KeepAliveURL,
		"keepalive_interval", cfg.KeepAliveInterval,
		"cache_size", cfg.CacheSize,
		"cache_ttl", cfg.CacheTTL)
}
