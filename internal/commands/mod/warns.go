// Package mod - comando warns (consulta del historial)
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createWarnsCommand creates the warns list command
func createWarnsCommand() *discord.Command {
	return discord.NewCommand(
		"warns",
		"Ver os warns de um usuário",
		"mod",
		warnsHandler,
	).WithUsage("!warns [@usuário]")
}

// warnsHandler lists the warns of the mentioned user, or of the caller when
// no one is mentioned. Anyone can consult the ledger.
func warnsHandler(ctx *discord.CommandContext) error {
	target := ctx.MentionedUser()
	if target == nil {
		target = ctx.User()
	}

	list, err := ctx.Warns.List(ctx.GuildID(), target.ID)
	if err != nil {
		return ctx.Reply("❌ Erro ao buscar os warns!")
	}

	if len(list) == 0 {
		return ctx.Reply(fmt.Sprintf("✅ %s não possui warns!", target.Username))
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(list))
	for i, w := range list {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Warn #%d", i+1),
			Value: fmt.Sprintf("**Motivo:** %s\n**Moderador:** %s\n**Data:** <t:%d:f>", w.Reason, w.Moderator, w.Timestamp),
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("⚠️ Warns de %s (%d)", target.Username, len(list)),
		Color:     discord.ColorWarn,
		Fields:    fields,
		Timestamp: time.Now().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: "🛡️ PancyMod Go"},
	}
	return ctx.ReplyEmbed(embed)
}
