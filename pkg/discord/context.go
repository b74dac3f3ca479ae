package discord

import (
	"strings"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/models"
	"github.com/PancyStudios/PancyModGo/pkg/warns"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// Responder is the outbound message surface used by command handlers
type Responder interface {
	Reply(content string) error
	ReplyEmbed(embed *discordgo.MessageEmbed) error
	Send(channelID, content string) (*discordgo.Message, error)
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
	DeleteMessage(channelID, messageID string) error
}

// sessionResponder sends replies through a discordgo session
type sessionResponder struct {
	s *discordgo.Session
	m *discordgo.MessageCreate
}

func (r *sessionResponder) Reply(content string) error {
	_, err := r.s.ChannelMessageSendReply(r.m.ChannelID, content, r.m.Reference())
	return err
}

func (r *sessionResponder) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	_, err := r.s.ChannelMessageSendEmbedReply(r.m.ChannelID, embed, r.m.Reference())
	return err
}

func (r *sessionResponder) Send(channelID, content string) (*discordgo.Message, error) {
	return r.s.ChannelMessageSend(channelID, content)
}

func (r *sessionResponder) SendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return r.s.ChannelMessageSendEmbed(channelID, embed)
}

func (r *sessionResponder) DeleteMessage(channelID, messageID string) error {
	return r.s.ChannelMessageDelete(channelID, messageID)
}

// CommandContext is the capability bundle handed to every command handler:
// the triggering message, parsed arguments, the moderation actions port, the
// warn store and the response surface. Handlers never reach for globals.
type CommandContext struct {
	Session *discordgo.Session
	Message *discordgo.MessageCreate
	Client  *ExtendedClient
	Args    []string
	Perms   int64
	Actions ModerationActions
	Warns   warns.Store
	Out     Responder
}

// NewCommandContext builds a context wired to the live session
func NewCommandContext(s *discordgo.Session, m *discordgo.MessageCreate, c *ExtendedClient, args []string, perms int64) *CommandContext {
	return &CommandContext{
		Session: s,
		Message: m,
		Client:  c,
		Args:    args,
		Perms:   perms,
		Actions: NewSessionActions(s),
		Warns:   c.Warns,
		Out:     &sessionResponder{s: s, m: m},
	}
}

// Reply sends a reply to the triggering message
func (ctx *CommandContext) Reply(content string) error {
	return ctx.Out.Reply(content)
}

// ReplyEmbed sends an embed reply to the triggering message
func (ctx *CommandContext) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	return ctx.Out.ReplyEmbed(embed)
}

// User returns the author of the triggering message
func (ctx *CommandContext) User() *discordgo.User {
	return ctx.Message.Author
}

// GuildID returns the guild where the command was issued
func (ctx *CommandContext) GuildID() string {
	return ctx.Message.GuildID
}

// ChannelID returns the channel where the command was issued
func (ctx *CommandContext) ChannelID() string {
	return ctx.Message.ChannelID
}

// MentionedUser returns the first mentioned user, or nil
func (ctx *CommandContext) MentionedUser() *discordgo.User {
	if len(ctx.Message.Mentions) == 0 {
		return nil
	}
	return ctx.Message.Mentions[0]
}

// TargetUser resolves the command target: the first mention, or the first
// argument interpreted as a user ID. Returns nil when neither resolves.
func (ctx *CommandContext) TargetUser() *discordgo.User {
	if user := ctx.MentionedUser(); user != nil {
		return user
	}
	if len(ctx.Args) == 0 {
		return nil
	}
	user, err := ctx.Actions.User(ctx.Args[0])
	if err != nil {
		return nil
	}
	return user
}

// Reason joins the arguments from the given index into a moderation reason,
// falling back to "Não informado" when empty
func (ctx *CommandContext) Reason(from int) string {
	if from >= len(ctx.Args) {
		return "Não informado"
	}
	reason := strings.TrimSpace(strings.Join(ctx.Args[from:], " "))
	if reason == "" {
		return "Não informado"
	}
	return reason
}

// Announce publishes a moderation action event to all configured sinks
// (MQTT audit topic, websocket feed). Fire-and-forget.
func (ctx *CommandContext) Announce(action string, target *discordgo.User, reason string) {
	event := models.ModActionEvent{
		ID:        uuid.NewString(),
		Action:    action,
		GuildID:   ctx.GuildID(),
		ChannelID: ctx.ChannelID(),
		Moderator: ctx.User().String(),
		Reason:    reason,
		Timestamp: time.Now().Unix(),
	}
	if target != nil {
		event.TargetID = target.ID
		event.TargetTag = target.String()
	}

	if ctx.Client != nil {
		ctx.Client.publishAction(event)
	}
}
