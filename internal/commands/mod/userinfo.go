// Package mod - comando userinfo
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createUserinfoCommand creates the userinfo command
func createUserinfoCommand() *discord.Command {
	return discord.NewCommand(
		"userinfo",
		"Ver informações de um usuário",
		"info",
		userinfoHandler,
	).WithAliases("user").WithUsage("!userinfo [@usuário]")
}

// userinfoHandler shows account and membership details for the mentioned
// user, defaulting to the caller. Open to everyone.
func userinfoHandler(ctx *discord.CommandContext) error {
	target := ctx.MentionedUser()
	if target == nil {
		target = ctx.User()
	}

	created, err := discordgo.SnowflakeTimestamp(target.ID)
	if err != nil {
		created = time.Time{}
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "🆔 ID", Value: target.ID, Inline: true},
		{Name: "🏷️ Tag", Value: target.String(), Inline: true},
		{Name: "📅 Conta criada", Value: fmt.Sprintf("<t:%d:f>", created.Unix()), Inline: false},
	}

	if member, err := ctx.Actions.Member(ctx.GuildID(), target.ID); err == nil && member != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "📥 Entrou no servidor",
			Value:  fmt.Sprintf("<t:%d:f>", member.JoinedAt.Unix()),
			Inline: false,
		})
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "🎭 Cargos",
			Value:  fmt.Sprintf("%d", len(member.Roles)),
			Inline: true,
		})
	}

	if count, err := ctx.Warns.Count(ctx.GuildID(), target.ID); err == nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "⚠️ Warns",
			Value:  fmt.Sprintf("%d", count),
			Inline: true,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("👤 Informações de %s", target.Username),
		Color:     discord.ColorInfo,
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: target.AvatarURL("256")},
		Fields:    fields,
		Timestamp: time.Now().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: "🛡️ PancyMod Go"},
	}
	return ctx.ReplyEmbed(embed)
}
