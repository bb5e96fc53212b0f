package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/MagicCritBot_Go/internal/critrate"
	"github.com/osse101/MagicCritBot_Go/internal/domain"
)

// Command names
const (
	CommandMagicCrit     = "magic_crit"
	CommandHelpMagicCrit = "help_magic_crit"

	OptionWit         = "wit"
	OptionBuffNumbers = "buff_numbers"
)

// MagicCritCommand returns the magic_crit command definition and handler
func MagicCritCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandMagicCrit,
		Description: "Calculates the Magic Critical Rate",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionWit,
				Description: "Your WIT value",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionBuffNumbers,
				Description: "Buff numbers separated by spaces, e.g. \"3 9\" (see /help_magic_crit)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, calc *critrate.Service) {
		options := optionMap(i)

		witOpt, ok := options[OptionWit]
		if !ok {
			respond(s, i, MsgCalculationError+MsgMissingWit)
			return
		}
		wit := int(witOpt.IntValue())

		var tokens []string
		if opt, ok := options[OptionBuffNumbers]; ok {
			tokens = critrate.ParseBuffTokens(opt.StringValue())
		}

		res, err := calc.ComputeRate(wit, tokens)
		if err != nil {
			var unknown *domain.UnknownBuffError
			if errors.As(err, &unknown) {
				slog.Debug("Rejected magic crit request", "token", unknown.Token, "user", userID(i))
				respond(s, i, fmt.Sprintf(MsgUnknownBuffFormat, unknown.Token))
				return
			}
			slog.Error("Magic crit calculation failed", "error", err)
			respond(s, i, MsgCalculationError+err.Error())
			return
		}

		slog.Debug("Magic crit calculated", "wit", wit, "buffs", len(tokens), "rate", res.FinalRate, "capped", res.Capped)
		respond(s, i, formatCalculation(res))
	}

	return cmd, handler
}

// HelpMagicCritCommand returns the help_magic_crit command definition and handler
func HelpMagicCritCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandHelpMagicCrit,
		Description: "Shows how to use the magic_crit command",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, calc *critrate.Service) {
		respond(s, i, formatHelp(calc.Catalog()))
	}

	return cmd, handler
}

// formatCalculation renders a result the way /magic_crit replies
func formatCalculation(res domain.CalculationResult) string {
	applied := MsgNoBuffs
	if len(res.AppliedBuffs) > 0 {
		quoted := make([]string, len(res.AppliedBuffs))
		for i, name := range res.AppliedBuffs {
			quoted[i] = fmt.Sprintf(ResponseBuffFormat, name)
		}
		applied = strings.Join(quoted, ResponseBuffJoin)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, ResponseWitFormat, res.Attribute)
	fmt.Fprintf(&sb, ResponseBuffsFormat, applied)
	fmt.Fprintf(&sb, ResponseRateFormat, critrate.FormatResult(res.FinalRate))
	return sb.String()
}

// formatHelp renders usage plus every catalog buff in id order
func formatHelp(catalog *critrate.Catalog) string {
	var sb strings.Builder
	sb.WriteString(HelpHeader)
	sb.WriteString(HelpSyntax)

	example := make([]string, 0, len(helpExampleIDs))
	for _, id := range helpExampleIDs {
		if b, ok := catalog.Get(id); ok {
			example = append(example, b.Name)
		}
	}
	fmt.Fprintf(&sb, HelpExample, strings.Join(example, " + "))

	sb.WriteString(HelpBuffsTitle)
	for _, b := range catalog.All() {
		fmt.Fprintf(&sb, HelpBuffLine, b.ID, b.Label())
	}

	title := cases.Title(language.English)
	fmt.Fprintf(&sb, HelpKindsNote,
		title.String(string(domain.BuffMultiplicative)),
		title.String(string(domain.BuffAdditive)))

	return sb.String()
}

func userID(i *discordgo.InteractionCreate) string {
	if u := getInteractionUser(i); u != nil {
		return u.ID
	}
	return ""
}
