// Package events provides event handlers for guild (server) events
package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterGuildEvents registers all guild-related event handlers
func RegisterGuildEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnGuildCreate(func(s *discordgo.Session, g *discordgo.GuildCreate) {
		onGuildCreate(client, s, g)
	})
	client.EventHandler.OnGuildDelete(onGuildDelete)
}

// onGuildCreate is called when the bot joins a server. Guild syncs during
// startup also arrive as GuildCreate, so only recent joins get a greeting.
func onGuildCreate(client *discord.ExtendedClient, s *discordgo.Session, g *discordgo.GuildCreate) {
	if g.JoinedAt.Compare(time.Now().Add(-10*time.Second)) < 0 {
		return
	}

	logger.Info(fmt.Sprintf("➕ Bot agregado a servidor: %s (ID: %s)", g.Name, g.ID), "Guild")
	logger.Debug(fmt.Sprintf("   Miembros: %d | Canales: %d", g.MemberCount, len(g.Channels)), "Guild")

	if g.SystemChannelID == "" {
		return
	}

	prefix := client.Prefix()
	welcomeEmbed := &discordgo.MessageEmbed{
		Title:       "¡Gracias por agregarme! 🎉",
		Description: fmt.Sprintf("Hola, soy **PancyMod**. Usa `%smodhelp` para ver todos mis comandos.", prefix),
		Color:       0x00ff00,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🔧 Moderación",
				Value:  fmt.Sprintf("`%sban`, `%skick`, `%smute`, `%swarn`...", prefix, prefix, prefix, prefix),
				Inline: true,
			},
			{
				Name:   "❓ Ayuda",
				Value:  fmt.Sprintf("Usa `%smodhelp` para más información", prefix),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "🛡️ PancyMod Go",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if _, err := s.ChannelMessageSendEmbed(g.SystemChannelID, welcomeEmbed); err != nil {
		logger.Error(fmt.Sprintf("Error enviando mensaje de bienvenida: %v", err), "Guild")
	}
}

// onGuildDelete is called when the bot is removed from a server
func onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	logger.Info(fmt.Sprintf("➖ Bot removido del servidor ID: %s", g.ID), "Guild")
}
