// Package mod - comandos lock y unlock
package mod

import (
	"github.com/PancyStudios/PancyModGo/pkg/discord"
)

// createLockCommand creates the lock command
func createLockCommand() *discord.Command {
	return discord.NewCommand(
		"lock",
		"Trancar o canal atual",
		"mod",
		lockHandler,
	).WithUsage("!lock").RequireMod()
}

// createUnlockCommand creates the unlock command
func createUnlockCommand() *discord.Command {
	return discord.NewCommand(
		"unlock",
		"Destrancar o canal atual",
		"mod",
		unlockHandler,
	).WithUsage("!unlock").RequireMod()
}

// lockHandler denies SendMessages for @everyone in the current channel. The
// @everyone role ID is the guild ID.
func lockHandler(ctx *discord.CommandContext) error {
	if err := ctx.Actions.LockChannel(ctx.ChannelID(), ctx.GuildID()); err != nil {
		return ctx.Reply("❌ Erro ao trancar o canal!")
	}

	ctx.Announce("lock", nil, "Canal trancado")
	return ctx.Reply("🔒 Canal trancado!")
}

// unlockHandler restores SendMessages for @everyone in the current channel
func unlockHandler(ctx *discord.CommandContext) error {
	if err := ctx.Actions.UnlockChannel(ctx.ChannelID(), ctx.GuildID()); err != nil {
		return ctx.Reply("❌ Erro ao destrancar o canal!")
	}

	ctx.Announce("unlock", nil, "Canal destrancado")
	return ctx.Reply("🔓 Canal destrancado!")
}
