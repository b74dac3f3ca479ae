// Package dev contains owner-only developer commands. They are registered
// like any other prefix command but the router silently drops them for
// anyone who is not the configured owner.
package dev

import (
	"github.com/PancyStudios/PancyModGo/pkg/discord"
)

// RegisterDevCommands registers all developer commands
func RegisterDevCommands(client *discord.ExtendedClient) {
	client.Commands.Set(createEvalCommand())
}
