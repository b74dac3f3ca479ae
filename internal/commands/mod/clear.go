// Package mod - comando clear (borrado masivo)
package mod

import (
	"fmt"
	"strconv"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// clearConfirmDelay is how long the confirmation embed stays before deleting itself
const clearConfirmDelay = 5 * time.Second

// createClearCommand creates the clear command
func createClearCommand() *discord.Command {
	return discord.NewCommand(
		"clear",
		"Limpar mensagens do canal",
		"mod",
		clearHandler,
	).WithAliases("purge").WithUsage("!clear <quantidade>").RequireMod()
}

// clearHandler bulk-deletes messages. The triggering message is included in
// the batch, so amount+1 messages are requested and the report shows amount.
func clearHandler(ctx *discord.CommandContext) error {
	if len(ctx.Args) == 0 {
		return ctx.Reply("❌ Especifique um número entre 1 e 100! Uso: `!clear <quantidade>`")
	}

	amount, err := strconv.Atoi(ctx.Args[0])
	if err != nil || amount < 1 || amount > 100 {
		return ctx.Reply("❌ Especifique um número entre 1 e 100! Uso: `!clear <quantidade>`")
	}

	deleted, err := ctx.Actions.BulkDelete(ctx.ChannelID(), amount+1)
	if err != nil {
		return ctx.Reply("❌ Erro ao limpar as mensagens!")
	}
	if deleted > 0 {
		// Discount the command message itself
		deleted--
	}

	ctx.Announce("clear", nil, fmt.Sprintf("%d mensagens", deleted))

	embed := &discordgo.MessageEmbed{
		Title:       "🧹 Mensagens limpas",
		Description: fmt.Sprintf("**%d** mensagens foram deletadas por %s", deleted, ctx.User().Mention()),
		Color:       discord.ColorClear,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: "🛡️ PancyMod Go"},
	}

	msg, err := ctx.Out.SendEmbed(ctx.ChannelID(), embed)
	if err != nil || msg == nil {
		return err
	}

	go func(channelID, messageID string) {
		time.Sleep(clearConfirmDelay)
		_ = ctx.Out.DeleteMessage(channelID, messageID)
	}(ctx.ChannelID(), msg.ID)

	return nil
}
