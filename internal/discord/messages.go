package discord

// Friendly message constants for Discord responses
const (
	// Calculation
	MsgUnknownBuffFormat = "⚠️ Buff number `%s` not recognized. Use `/help_magic_crit` to see the list."
	MsgCalculationError  = "❌ Error in calculation: "
	MsgMissingWit        = "missing required WIT value"
	MsgNoBuffs           = "No buffs"

	MsgPong = "Pong! 🏓"
)

// Response layout for /magic_crit
const (
	ResponseWitFormat   = "**🔮 WIT:** `%d`\n"
	ResponseBuffsFormat = "**✨ Applied buffs:** \n\t%s\n"
	ResponseRateFormat  = "**📊 Magic Critical Rate:** `%s`"
	ResponseBuffFormat  = "`%s`"
	ResponseBuffJoin    = "\n\t"
)

// Help layout for /help_magic_crit
const (
	HelpHeader     = "**🔮 Usage of the `/magic_crit` command**\n"
	HelpSyntax     = "📌 **Syntax:** `/magic_crit <WIT> <buff_numbers>`\n"
	HelpExample    = "📌 **Example:** `/magic_crit 23 3 9` (%s)\n\n"
	HelpBuffsTitle = "**📌 Available buffs (use the numbers separated by space):**\n"
	HelpBuffLine   = "`%s`. %s\n"
	HelpKindsNote  = "\nℹ️ %s buffs scale the base rate first, then %s buffs are added."
)

// Example buffs shown in the help text
var helpExampleIDs = []string{"3", "9"}
