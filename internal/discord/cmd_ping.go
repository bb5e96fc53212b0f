package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MagicCritBot_Go/internal/critrate"
)

// PingCommand returns the ping command definition and handler
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the bot is alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, _ *critrate.Service) {
		respond(s, i, MsgPong)
	}

	return cmd, handler
}
