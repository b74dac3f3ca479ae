package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestHasModPermission(t *testing.T) {
	tests := []struct {
		name  string
		perms int64
		want  bool
	}{
		{"moderate members", discordgo.PermissionModerateMembers, true},
		{"administrator", discordgo.PermissionAdministrator, true},
		{"manage messages only", discordgo.PermissionManageMessages, true},
		{"all three", ModPermissions, true},
		{"mod plus unrelated", discordgo.PermissionModerateMembers | discordgo.PermissionSendMessages, true},
		{"none", 0, false},
		{"only unrelated", discordgo.PermissionSendMessages | discordgo.PermissionAttachFiles, false},
		{"kick members is not enough", discordgo.PermissionKickMembers, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasModPermission(tt.perms); got != tt.want {
				t.Errorf("HasModPermission(%#x) = %v, want %v", tt.perms, got, tt.want)
			}
		})
	}
}
