// Package mod - comando slowmode
package mod

import (
	"fmt"
	"strconv"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
)

// maxSlowmodeSeconds is the ceiling Discord accepts for a channel rate limit
const maxSlowmodeSeconds = 21600

// createSlowmodeCommand creates the slowmode command
func createSlowmodeCommand() *discord.Command {
	return discord.NewCommand(
		"slowmode",
		"Definir modo lento do canal",
		"mod",
		slowmodeHandler,
	).WithAliases("slow").WithUsage("!slowmode <segundos>").RequireMod()
}

// slowmodeHandler sets the channel rate limit. Zero disables slowmode.
func slowmodeHandler(ctx *discord.CommandContext) error {
	if len(ctx.Args) == 0 {
		return ctx.Reply("❌ Especifique os segundos (0 a 21600)! Uso: `!slowmode <segundos>`")
	}

	seconds, err := strconv.Atoi(ctx.Args[0])
	if err != nil || seconds < 0 || seconds > maxSlowmodeSeconds {
		return ctx.Reply("❌ Especifique os segundos (0 a 21600)! Uso: `!slowmode <segundos>`")
	}

	if err := ctx.Actions.SetRateLimit(ctx.ChannelID(), seconds); err != nil {
		return ctx.Reply("❌ Erro ao definir o modo lento!")
	}

	ctx.Announce("slowmode", nil, fmt.Sprintf("%d segundos", seconds))

	if seconds == 0 {
		return ctx.Reply("✅ Modo lento desativado!")
	}
	return ctx.Reply(fmt.Sprintf("🐢 Modo lento definido para **%d segundos**!", seconds))
}
