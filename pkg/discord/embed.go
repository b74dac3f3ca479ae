package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Embed colors per action
const (
	ColorBan      = 0xFF0000
	ColorKick     = 0xFF9500
	ColorMute     = 0x9B59B6
	ColorUnmute   = 0x00FF00
	ColorWarn     = 0xFFD700
	ColorClear    = 0x00FF00
	ColorSlowmode = 0x3498DB
	ColorLock     = 0xE74C3C
	ColorUnlock   = 0x27AE60
	ColorInfo     = 0x3498DB
	ColorHelp     = 0x9B59B6
)

// NewLogEmbed builds the standard moderation log embed: action title, target,
// moderator and reason, with the target's avatar as thumbnail
func NewLogEmbed(action string, moderator, target *discordgo.User, reason string, color int) *discordgo.MessageEmbed {
	if reason == "" {
		reason = "Não informado"
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🛡️ **%s**", strings.ToUpper(action)),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👤 **Usuário:**", Value: fmt.Sprintf("%s (%s)", target.String(), target.ID), Inline: true},
			{Name: "🛡️ **Moderador:**", Value: moderator.String(), Inline: true},
			{Name: "📝 **Motivo:**", Value: reason, Inline: false},
		},
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: target.AvatarURL(""),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
