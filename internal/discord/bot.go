package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MagicCritBot_Go/internal/critrate"
)

// Bot represents the Discord bot. It is constructed once in main and passed
// to everything that needs the session; there is no package-level instance.
type Bot struct {
	Session  *discordgo.Session
	Calc     *critrate.Service
	AppID    string
	GuildID  string
	Registry *CommandRegistry
}

// Config holds the bot configuration
type Config struct {
	Token   string
	AppID   string
	GuildID string
}

// New creates a new Discord bot
func New(cfg Config, calc *critrate.Service) (*Bot, error) {
	if cfg.Token == "" {
		return nil, errors.New("discord token is required")
	}

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session:  s,
		Calc:     calc,
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		Registry: NewCommandRegistry(),
	}, nil
}

// Start wires event handlers and opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running")
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Error("Failed to close Discord session", "error", err)
	}
}

// CheckHealth reports an error until the gateway has delivered READY
func (b *Bot) CheckHealth(_ context.Context) error {
	if !b.Connected() {
		return errors.New("discord session not ready")
	}
	return nil
}

// Connected reports whether the gateway session is ready
func (b *Bot) Connected() bool {
	return b.Session != nil && b.Session.DataReady
}

// applicationID returns the configured app id, or asks Discord for the bot
// user id, which equals the application id for bot accounts.
func (b *Bot) applicationID() (string, error) {
	if b.AppID != "" {
		return b.AppID, nil
	}
	u, err := b.Session.User("@me")
	if err != nil {
		return "", fmt.Errorf("failed to resolve application id: %w", err)
	}
	b.AppID = u.ID
	return b.AppID, nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", r.User.String(), "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Calc)
	}
}
