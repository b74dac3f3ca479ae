// Package mod - comando kick
package mod

import (
	"github.com/PancyStudios/PancyModGo/pkg/discord"
)

// createKickCommand creates the kick command
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Expulsar usuário do servidor",
		"mod",
		kickHandler,
	).WithUsage("!kick @usuário [motivo]").RequireMod()
}

// kickHandler handles the kick command
func kickHandler(ctx *discord.CommandContext) error {
	target := ctx.MentionedUser()
	if target == nil {
		return ctx.Reply("❌ Mencione um usuário! Uso: `!kick @usuário [motivo]`")
	}

	member, err := ctx.Actions.Member(ctx.GuildID(), target.ID)
	if err != nil || member == nil || !ctx.Actions.CanModerate(ctx.GuildID(), target.ID) {
		return ctx.Reply("❌ Não posso expulsar este usuário!")
	}

	reason := ctx.Reason(1)

	if err := ctx.Actions.Kick(ctx.GuildID(), target.ID, reason); err != nil {
		return ctx.Reply("❌ Erro ao expulsar o usuário!")
	}

	ctx.Announce("kick", target, reason)

	embed := discord.NewLogEmbed("kick", ctx.User(), target, reason, discord.ColorKick)
	return ctx.ReplyEmbed(embed)
}
