// Package commands provides utility commands for the bot.
package commands

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/database"
	"github.com/PancyStudios/PancyModGo/pkg/discord"
)

// RegisterUtilCommands registers all utility commands
func RegisterUtilCommands(client *discord.ExtendedClient) {
	// Ping command
	client.Commands.Set(discord.NewCommand(
		"ping",
		"Comprueba la latencia del bot",
		"util",
		func(ctx *discord.CommandContext) error {
			latency := ctx.Client.Session.HeartbeatLatency().Milliseconds()
			return ctx.Reply(fmt.Sprintf("🏓 Pong! Latencia: %dms", latency))
		},
	))

	// Status command
	client.Commands.Set(discord.NewCommand(
		"status",
		"Muestra el estado del bot",
		"util",
		func(ctx *discord.CommandContext) error {
			db := database.Get()
			dbStatus, _ := db.GetStatus()
			uptime := time.Since(ctx.Client.StartTime).Round(time.Second)

			return ctx.Reply(fmt.Sprintf(
				"📊 **Estado del Bot**\n"+
					"• Bot: 🟢 Online\n"+
					"• Base de datos: %s\n"+
					"• Servidores: %d\n"+
					"• Uptime: %s",
				dbStatus,
				ctx.Client.GuildCount(),
				uptime,
			))
		},
	))
}
