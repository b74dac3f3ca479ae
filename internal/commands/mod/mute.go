// Package mod - comandos mute y unmute (timeout)
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
)

// createMuteCommand creates the mute command
func createMuteCommand() *discord.Command {
	return discord.NewCommand(
		"mute",
		"Aplicar castigo (timeout) em um usuário",
		"mod",
		muteHandler,
	).WithAliases("timeout").WithUsage("!mute @usuário [tempo] [motivo]").RequireMod()
}

// createUnmuteCommand creates the unmute command
func createUnmuteCommand() *discord.Command {
	return discord.NewCommand(
		"unmute",
		"Remover castigo (timeout) de um usuário",
		"mod",
		unmuteHandler,
	).WithUsage("!unmute @usuário").RequireMod()
}

// muteHandler handles the mute command
func muteHandler(ctx *discord.CommandContext) error {
	target := ctx.MentionedUser()
	if target == nil {
		return ctx.Reply("❌ Mencione um usuário! Uso: `!mute @usuário [tempo] [motivo]`")
	}

	if !ctx.Actions.CanModerate(ctx.GuildID(), target.ID) {
		return ctx.Reply("❌ Não posso mutar este usuário!")
	}

	duration := discord.DefaultMuteDuration
	reasonFrom := 1
	if len(ctx.Args) > 1 {
		if d, ok := discord.TryParseDuration(ctx.Args[1]); ok {
			duration = d
			reasonFrom = 2
		}
	}
	reason := ctx.Reason(reasonFrom)

	until := time.Now().Add(duration)
	if err := ctx.Actions.Timeout(ctx.GuildID(), target.ID, &until); err != nil {
		return ctx.Reply("❌ Erro ao mutar o usuário!")
	}

	ctx.Announce("mute", target, reason)

	detail := fmt.Sprintf("%s | Tempo: %s", reason, discord.FormatDuration(duration))
	embed := discord.NewLogEmbed("mute", ctx.User(), target, detail, discord.ColorMute)
	return ctx.ReplyEmbed(embed)
}

// unmuteHandler handles the unmute command
func unmuteHandler(ctx *discord.CommandContext) error {
	target := ctx.MentionedUser()
	if target == nil {
		return ctx.Reply("❌ Mencione um usuário! Uso: `!unmute @usuário`")
	}

	if err := ctx.Actions.Timeout(ctx.GuildID(), target.ID, nil); err != nil {
		return ctx.Reply("❌ Erro ao desmutar o usuário!")
	}

	ctx.Announce("unmute", target, "Castigo removido")

	embed := discord.NewLogEmbed("unmute", ctx.User(), target, "Castigo removido", discord.ColorUnmute)
	return ctx.ReplyEmbed(embed)
}
