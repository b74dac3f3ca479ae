package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// ModerationActions is the narrow interface over the platform's administrative
// API consumed by the command handlers. Every call is a single remote
// operation; failures surface as errors and are converted to generic user
// notices at the command boundary.
type ModerationActions interface {
	// Ban bans a user from the guild. The user does not need to be a member.
	Ban(guildID, userID, reason string) error
	// Kick removes a member from the guild.
	Kick(guildID, userID, reason string) error
	// Timeout applies a communication timeout until the given time.
	// A nil until clears an active timeout.
	Timeout(guildID, userID string, until *time.Time) error
	// BulkDelete removes up to amount recent messages from the channel and
	// returns how many were actually deleted. Fetches are capped at the
	// API's 100-message limit, so amount beyond that is best effort.
	BulkDelete(channelID string, amount int) (int, error)
	// SetRateLimit sets the channel's slowmode in seconds (0 disables it).
	SetRateLimit(channelID string, seconds int) error
	// LockChannel denies SendMessages for the given role on the channel.
	LockChannel(channelID, roleID string) error
	// UnlockChannel clears the SendMessages override for the given role.
	UnlockChannel(channelID, roleID string) error
	// User resolves a user by ID.
	User(userID string) (*discordgo.User, error)
	// Member resolves a guild member by ID.
	Member(guildID, userID string) (*discordgo.Member, error)
	// CanModerate reports whether the bot's role hierarchy permits acting on
	// the target. Non-members are considered actionable (e.g. ban by ID).
	CanModerate(guildID, userID string) bool
}

// sessionActions implements ModerationActions over a discordgo session
type sessionActions struct {
	s *discordgo.Session
}

// NewSessionActions wraps a discordgo session as ModerationActions
func NewSessionActions(s *discordgo.Session) ModerationActions {
	return &sessionActions{s: s}
}

func (a *sessionActions) Ban(guildID, userID, reason string) error {
	return a.s.GuildBanCreateWithReason(guildID, userID, reason, 0)
}

func (a *sessionActions) Kick(guildID, userID, reason string) error {
	return a.s.GuildMemberDeleteWithReason(guildID, userID, reason)
}

func (a *sessionActions) Timeout(guildID, userID string, until *time.Time) error {
	return a.s.GuildMemberTimeout(guildID, userID, until)
}

// maxMessagesPerFetch is the ceiling Discord accepts on a message history
// request; asking for more returns HTTP 400
const maxMessagesPerFetch = 100

// clampFetchAmount bounds a message fetch to what the API accepts
func clampFetchAmount(amount int) int {
	if amount > maxMessagesPerFetch {
		return maxMessagesPerFetch
	}
	return amount
}

func (a *sessionActions) BulkDelete(channelID string, amount int) (int, error) {
	messages, err := a.s.ChannelMessages(channelID, clampFetchAmount(amount), "", "", "")
	if err != nil {
		return 0, err
	}

	ids := make([]string, 0, len(messages))
	for _, msg := range messages {
		ids = append(ids, msg.ID)
	}

	switch len(ids) {
	case 0:
		return 0, nil
	case 1:
		if err := a.s.ChannelMessageDelete(channelID, ids[0]); err != nil {
			return 0, err
		}
		return 1, nil
	default:
		if err := a.s.ChannelMessagesBulkDelete(channelID, ids); err != nil {
			return 0, err
		}
		return len(ids), nil
	}
}

func (a *sessionActions) SetRateLimit(channelID string, seconds int) error {
	_, err := a.s.ChannelEdit(channelID, &discordgo.ChannelEdit{
		RateLimitPerUser: &seconds,
	})
	return err
}

func (a *sessionActions) LockChannel(channelID, roleID string) error {
	allow, deny := a.overwriteFor(channelID, roleID)
	allow &^= discordgo.PermissionSendMessages
	deny |= discordgo.PermissionSendMessages
	return a.s.ChannelPermissionSet(channelID, roleID, discordgo.PermissionOverwriteTypeRole, allow, deny)
}

func (a *sessionActions) UnlockChannel(channelID, roleID string) error {
	allow, deny := a.overwriteFor(channelID, roleID)
	allow &^= discordgo.PermissionSendMessages
	deny &^= discordgo.PermissionSendMessages

	// Nothing left in the override: drop it entirely
	if allow == 0 && deny == 0 {
		return a.s.ChannelPermissionDelete(channelID, roleID)
	}
	return a.s.ChannelPermissionSet(channelID, roleID, discordgo.PermissionOverwriteTypeRole, allow, deny)
}

// overwriteFor returns the current allow/deny bits of the role's permission
// override on the channel, or zeros when no override exists
func (a *sessionActions) overwriteFor(channelID, roleID string) (allow, deny int64) {
	channel, err := a.s.State.Channel(channelID)
	if err != nil {
		channel, err = a.s.Channel(channelID)
		if err != nil {
			return 0, 0
		}
	}

	for _, ow := range channel.PermissionOverwrites {
		if ow.ID == roleID && ow.Type == discordgo.PermissionOverwriteTypeRole {
			return ow.Allow, ow.Deny
		}
	}
	return 0, 0
}

func (a *sessionActions) User(userID string) (*discordgo.User, error) {
	return a.s.User(userID)
}

func (a *sessionActions) Member(guildID, userID string) (*discordgo.Member, error) {
	member, err := a.s.State.Member(guildID, userID)
	if err == nil {
		return member, nil
	}
	return a.s.GuildMember(guildID, userID)
}

func (a *sessionActions) CanModerate(guildID, userID string) bool {
	guild, err := a.s.State.Guild(guildID)
	if err != nil {
		return true
	}

	// The guild owner is never actionable
	if guild.OwnerID == userID {
		return false
	}

	target, err := a.Member(guildID, userID)
	if err != nil || target == nil {
		// Not a member: ban by ID is still possible
		return true
	}

	bot, err := a.Member(guildID, a.s.State.User.ID)
	if err != nil || bot == nil {
		return false
	}

	return highestRolePosition(guild, bot) > highestRolePosition(guild, target)
}

// highestRolePosition returns the position of the member's highest role
func highestRolePosition(guild *discordgo.Guild, member *discordgo.Member) int {
	highest := 0
	for _, roleID := range member.Roles {
		for _, role := range guild.Roles {
			if role.ID == roleID && role.Position > highest {
				highest = role.Position
			}
		}
	}
	return highest
}
