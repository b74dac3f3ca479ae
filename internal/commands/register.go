// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (mod, dev, etc.)
package commands

import (
	"github.com/PancyStudios/PancyModGo/internal/commands/dev"
	"github.com/PancyStudios/PancyModGo/internal/commands/mod"
	"github.com/PancyStudios/PancyModGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Utility commands
	RegisterUtilCommands(client)

	// Moderation commands (!ban, !kick, !warn, !mute, ...)
	mod.RegisterModCommands(client)

	// Owner-only developer commands
	dev.RegisterDevCommands(client)
}
