package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/MagicCritBot_Go/internal/bootstrap"
	"github.com/osse101/MagicCritBot_Go/internal/config"
	"github.com/osse101/MagicCritBot_Go/internal/critrate"
	"github.com/osse101/MagicCritBot_Go/internal/discord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)

	calc := critrate.NewService(critrate.NewCalculator(nil), critrate.CacheConfig{
		Size: cfg.CacheSize,
		TTL:  cfg.CacheTTL,
	})

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, calc)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	bootstrap.RegisterCommands(bot, bootstrap.CommandFactories())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	components, err := bootstrap.Start(ctx, cfg, bot)
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Bot is running. Press CTRL-C to exit.")
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)
}
