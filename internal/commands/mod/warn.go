// Package mod - comando warn con escalado automático
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/warns"
)

// createWarnCommand creates the warn command
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Advertir um usuário",
		"mod",
		warnHandler,
	).WithUsage("!warn @usuário [motivo]").RequireMod()
}

// warnHandler records a warn and escalates to an automatic timeout when the
// user crosses the warn threshold.
func warnHandler(ctx *discord.CommandContext) error {
	target := ctx.MentionedUser()
	if target == nil {
		return ctx.Reply("❌ Mencione um usuário! Uso: `!warn @usuário [motivo]`")
	}

	reason := ctx.Reason(1)

	count, _, err := ctx.Warns.Record(ctx.GuildID(), target.ID, reason, ctx.User().String())
	if err != nil {
		logger.Error("Error al registrar warn: "+err.Error(), "Warns")
		return ctx.Reply("❌ Erro ao registrar o warn!")
	}

	ctx.Announce("warn", target, reason)

	detail := fmt.Sprintf("%s | Warns: %d", reason, count)
	embed := discord.NewLogEmbed("warn", ctx.User(), target, detail, discord.ColorWarn)
	if err := ctx.ReplyEmbed(embed); err != nil {
		return err
	}

	if warns.ShouldEscalate(count-1, count) {
		// El warn queda registrado aunque el usuario ya no sea moderable
		if !ctx.Actions.CanModerate(ctx.GuildID(), target.ID) {
			logger.Warn(fmt.Sprintf("Escalado omitido: %s no es moderable", target.ID), "Warns")
			return nil
		}

		until := time.Now().Add(warns.EscalationTimeout)
		if err := ctx.Actions.Timeout(ctx.GuildID(), target.ID, &until); err != nil {
			logger.Warn("No se pudo aplicar el timeout de escalado: "+err.Error(), "Warns")
			return nil
		}
		ctx.Announce("mute", target, warns.EscalationReason)
		return ctx.Reply(fmt.Sprintf("⚠️ %s foi mutado por 1 hora devido a muitos warns!", target.Mention()))
	}

	return nil
}
