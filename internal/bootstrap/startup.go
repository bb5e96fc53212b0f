package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MagicCritBot_Go/internal/config"
	"github.com/osse101/MagicCritBot_Go/internal/discord"
	"github.com/osse101/MagicCritBot_Go/internal/keepalive"
)

// CommandFactory creates a Discord command and its handler.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

// CommandFactories returns every slash command the bot serves
func CommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.MagicCritCommand,
		discord.HelpMagicCritCommand,
		discord.PingCommand,
	}
}

// RegisterCommands adds each factory's command to the bot's registry
func RegisterCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
	slog.Info(LogMsgCommandsRegistered, "count", len(factories))
}

// Components holds everything started by Start that needs a graceful shutdown
type Components struct {
	Bot    *discord.Bot
	Server *discord.HTTPServer
	Pinger *keepalive.Pinger
}

// Start brings the bot up in order: open the gateway and sync commands,
// start the liveness server, then start the keep-alive loop.
// A failed command sync is logged and startup continues; commands may
// already be registered from a previous run.
func Start(ctx context.Context, cfg *config.Config, bot *discord.Bot) (*Components, error) {
	if err := bot.Start(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedStartDiscord, err)
	}
	c := &Components{Bot: bot}

	if cfg.ForceCommandUpdate {
		slog.Info(LogMsgForceCommandUpdate)
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.ForceCommandUpdate); err != nil {
		slog.Error(LogMsgCommandSyncFailed, "error", err)
	}

	c.Server = discord.NewHTTPServer(cfg.ListenAddr(), bot)
	c.Server.Start()

	if cfg.KeepAliveEnabled() {
		c.Pinger = keepalive.New(keepalive.Config{
			URL:      cfg.KeepAliveURL,
			Interval: cfg.KeepAliveInterval,
			Timeout:  cfg.KeepAliveTimeout,
		}, nil)
		c.Pinger.Start(ctx)
	} else {
		slog.Info(LogMsgKeepAliveDisabled)
	}

	return c, nil
}
