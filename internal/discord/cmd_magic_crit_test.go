package discord

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MagicCritBot_Go/internal/domain"
)

func TestMagicCritCommand_Definition(t *testing.T) {
	cmd, _ := MagicCritCommand()

	assert.Equal(t, CommandMagicCrit, cmd.Name)
	require.Len(t, cmd.Options, 2)
	assert.Equal(t, discordgo.ApplicationCommandOptionInteger, cmd.Options[0].Type)
	assert.True(t, cmd.Options[0].Required)
	assert.Equal(t, discordgo.ApplicationCommandOptionString, cmd.Options[1].Type)
	assert.False(t, cmd.Options[1].Required)
}

func TestMagicCritCommand_Handler(t *testing.T) {
	tests := []struct {
		name     string
		opts     []*discordgo.ApplicationCommandInteractionDataOption
		contains []string
		excludes []string
	}{
		{
			name:     "no buffs",
			opts:     []*discordgo.ApplicationCommandInteractionDataOption{witOption(23)},
			contains: []string{"**🔮 WIT:** `23`", MsgNoBuffs, "`5.81%`"},
		},
		{
			name:     "empty buff string",
			opts:     []*discordgo.ApplicationCommandInteractionDataOption{witOption(23), buffOption("   ")},
			contains: []string{MsgNoBuffs, "`5.81%`"},
		},
		{
			name: "additive and multiplicative",
			opts: []*discordgo.ApplicationCommandInteractionDataOption{witOption(23), buffOption("3 9")},
			contains: []string{
				"**✨ Applied buffs:** \n\t`Necklace of Valakas`\n\t`Dark Squad lvl 3`\n",
				"**📊 Magic Critical Rate:** `7.87%`",
			},
			excludes: []string{MsgNoBuffs},
		},
		{
			name:     "above display cap",
			opts:     []*discordgo.ApplicationCommandInteractionDataOption{witOption(40), buffOption("8 9 10")},
			contains: []string{"`20% (28.19%)`", "`Dance of Siren`", "`Magician's Will`"},
		},
		{
			name:     "unknown buff",
			opts:     []*discordgo.ApplicationCommandInteractionDataOption{witOption(23), buffOption("99")},
			contains: []string{fmt.Sprintf(MsgUnknownBuffFormat, "99")},
			excludes: []string{"Magic Critical Rate"},
		},
		{
			name:     "first unknown buff wins",
			opts:     []*discordgo.ApplicationCommandInteractionDataOption{witOption(23), buffOption("3 abc 42")},
			contains: []string{"`abc`"},
			excludes: []string{"`42`"},
		},
		{
			name:     "missing wit",
			opts:     nil,
			contains: []string{MsgCalculationError, MsgMissingWit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := SetupTestContext(t)
			cmd, handler := MagicCritCommand()

			handler(ctx.Session, commandInteraction(cmd.Name, tt.opts...), ctx.Calc)

			got := ctx.LastContent(t)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestHelpMagicCritCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := HelpMagicCritCommand()

	handler(ctx.Session, commandInteraction(cmd.Name), ctx.Calc)
	got := ctx.LastContent(t)

	assert.Contains(t, got, HelpHeader)
	assert.Contains(t, got, "(Necklace of Valakas + Dark Squad lvl 3)")
	assert.Contains(t, got, "`1`. Wild Magic 2 (+2)\n")
	assert.Contains(t, got, "`5`. Active Augment: WM Level 10 (+4)\n")
	assert.Contains(t, got, "`9`. Dark Squad lvl 3 (x1.01)\n")
	assert.Contains(t, got, "`10`. Magician's Will (x1.05)\n")
	assert.Contains(t, got, "Multiplicative buffs scale the base rate first, then Additive buffs are added.")

	// Listed in numeric id order
	assert.Less(t, strings.Index(got, "`2`."), strings.Index(got, "`10`."))
	assert.Equal(t, 10, strings.Count(got, "`. "))
}

func TestFormatCalculation(t *testing.T) {
	got := formatCalculation(domain.CalculationResult{
		Attribute:    -5,
		FinalRate:    1.5,
		AppliedBuffs: []string{"Infinity Scepter"},
	})

	assert.Equal(t,
		"**🔮 WIT:** `-5`\n**✨ Applied buffs:** \n\t`Infinity Scepter`\n**📊 Magic Critical Rate:** `1.50%`",
		got)
}

func TestPingCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := PingCommand()

	handler(ctx.Session, commandInteraction(cmd.Name), ctx.Calc)

	assert.Equal(t, MsgPong, ctx.LastContent(t))
}
