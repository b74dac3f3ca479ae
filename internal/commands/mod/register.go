// Package mod provides the moderation commands.
// Each command is in its own file for better organization.
package mod

import (
	"github.com/PancyStudios/PancyModGo/pkg/discord"
)

// RegisterModCommands registers all moderation commands
func RegisterModCommands(client *discord.ExtendedClient) {
	client.Commands.Set(createBanCommand())
	client.Commands.Set(createKickCommand())
	client.Commands.Set(createMuteCommand())
	client.Commands.Set(createUnmuteCommand())
	client.Commands.Set(createWarnCommand())
	client.Commands.Set(createWarnsCommand())
	client.Commands.Set(createClearCommand())
	client.Commands.Set(createSlowmodeCommand())
	client.Commands.Set(createLockCommand())
	client.Commands.Set(createUnlockCommand())
	client.Commands.Set(createUserinfoCommand())
	client.Commands.Set(createHelpCommand())
}
