package discord

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestSessionIntents verifies the gateway subscription includes everything the
// moderation commands depend on
func TestSessionIntents(t *testing.T) {
	c := newTestClient(t, 0)

	required := []struct {
		name   string
		intent discordgo.Intent
	}{
		{"guilds", discordgo.IntentsGuilds},
		{"guild messages", discordgo.IntentsGuildMessages},
		{"message content", discordgo.IntentsMessageContent},
		{"guild members", discordgo.IntentsGuildMembers},
		{"guild moderation", discordgo.IntentGuildModeration},
	}

	for _, r := range required {
		if c.Session.Identify.Intents&r.intent == 0 {
			t.Errorf("intent %s is not set", r.name)
		}
	}
}

// TestTypedEventRegistration verifies that handlers registered through the
// typed wrappers are accepted by the session. discordgo matches handlers by
// exact signature and logs "Invalid handler type" for anything it rejects.
func TestTypedEventRegistration(t *testing.T) {
	var mu sync.Mutex
	var logs []string

	prev := discordgo.Logger
	discordgo.Logger = func(msgL, caller int, format string, a ...interface{}) {
		mu.Lock()
		logs = append(logs, fmt.Sprintf(format, a...))
		mu.Unlock()
	}
	defer func() { discordgo.Logger = prev }()

	c := newTestClient(t, 0)
	eh := c.EventHandler

	eh.OnReady(func(s *discordgo.Session, r *discordgo.Ready) {})
	eh.OnGuildCreate(func(s *discordgo.Session, g *discordgo.GuildCreate) {})
	eh.OnGuildDelete(func(s *discordgo.Session, g *discordgo.GuildDelete) {})
	eh.OnDisconnect(func(s *discordgo.Session, d *discordgo.Disconnect) {})
	eh.OnResumed(func(s *discordgo.Session, r *discordgo.Resumed) {})

	if eh.Count() != 5 {
		t.Errorf("Count() = %d, want 5", eh.Count())
	}

	mu.Lock()
	defer mu.Unlock()
	for _, entry := range logs {
		if strings.Contains(entry, "Invalid handler type") {
			t.Fatalf("session rejected a typed handler: %q", entry)
		}
	}
}
