package discord

import "github.com/bwmarrin/discordgo"

// ModPermissions are the permission flags that grant access to privileged
// commands. Holding any one of them is enough.
const ModPermissions = discordgo.PermissionModerateMembers |
	discordgo.PermissionAdministrator |
	discordgo.PermissionManageMessages

// HasModPermission reports whether the given permission set qualifies as
// moderator. Pure predicate, no caching.
func HasModPermission(permissions int64) bool {
	return permissions&ModPermissions != 0
}
