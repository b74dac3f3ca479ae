// Package mod - comando ban
package mod

import (
	"github.com/PancyStudios/PancyModGo/pkg/discord"
)

// createBanCommand creates the ban command
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Banir usuário do servidor",
		"mod",
		banHandler,
	).WithUsage("!ban @usuário [motivo]").RequireMod()
}

// banHandler handles the ban command
func banHandler(ctx *discord.CommandContext) error {
	// Ban aceita menção ou ID direto
	target := ctx.TargetUser()
	if target == nil {
		return ctx.Reply("❌ Mencione um usuário válido! Uso: `!ban @usuário [motivo]`")
	}

	if !ctx.Actions.CanModerate(ctx.GuildID(), target.ID) {
		return ctx.Reply("❌ Não posso banir este usuário!")
	}

	reason := ctx.Reason(1)

	if err := ctx.Actions.Ban(ctx.GuildID(), target.ID, reason); err != nil {
		return ctx.Reply("❌ Erro ao banir o usuário!")
	}

	ctx.Announce("ban", target, reason)

	embed := discord.NewLogEmbed("ban", ctx.User(), target, reason, discord.ColorBan)
	return ctx.ReplyEmbed(embed)
}
