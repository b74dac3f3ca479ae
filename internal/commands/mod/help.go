// Package mod - comando modhelp
package mod

import (
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createHelpCommand creates the moderation help command
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"modhelp",
		"Ver todos os comandos de moderação",
		"info",
		helpHandler,
	).WithAliases("ajudamod").WithUsage("!modhelp")
}

// helpHandler replies with the static moderation command reference
func helpHandler(ctx *discord.CommandContext) error {
	embed := &discordgo.MessageEmbed{
		Title:       "🛡️ Comandos de Moderação",
		Description: "Lista de comandos disponíveis:",
		Color:       discord.ColorHelp,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "!ban @usuário [motivo]", Value: "Banir usuário do servidor"},
			{Name: "!kick @usuário [motivo]", Value: "Expulsar usuário do servidor"},
			{Name: "!mute @usuário [tempo] [motivo]", Value: "Mutar usuário (ex: 10m, 2h, 3d)"},
			{Name: "!unmute @usuário", Value: "Desmutar usuário"},
			{Name: "!warn @usuário [motivo]", Value: "Advertir usuário (3 warns = mute de 1 hora)"},
			{Name: "!warns [@usuário]", Value: "Ver os warns de um usuário"},
			{Name: "!clear <quantidade>", Value: "Limpar mensagens (1 a 100)"},
			{Name: "!slowmode <segundos>", Value: "Definir modo lento (0 a 21600)"},
			{Name: "!lock / !unlock", Value: "Trancar ou destrancar o canal"},
			{Name: "!userinfo [@usuário]", Value: "Ver informações de um usuário"},
		},
		Timestamp: time.Now().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: "🛡️ PancyMod Go"},
	}
	return ctx.ReplyEmbed(embed)
}
