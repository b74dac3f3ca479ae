package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

// TestCommandCreation verifies that commands can be created with the builder pattern
func TestCommandCreation(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("ban", "Bane um usuário", "mod", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}

	if cmd.Name != "ban" {
		t.Errorf("Name = %v, want %v", cmd.Name, "ban")
	}

	if cmd.Category != "mod" {
		t.Errorf("Category = %v, want %v", cmd.Category, "mod")
	}

	if cmd.Run == nil {
		t.Error("Run function is nil")
	}

	if cmd.RequiresMod {
		t.Error("RequiresMod should default to false")
	}
}

func TestCommandBuilder(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("clear", "Limpa mensagens", "mod", handler).
		WithAliases("purge").
		WithUsage("!clear [número]").
		RequireMod()

	if len(cmd.Aliases) != 1 || cmd.Aliases[0] != "purge" {
		t.Errorf("Aliases = %v, want [purge]", cmd.Aliases)
	}

	if cmd.Usage != "!clear [número]" {
		t.Errorf("Usage = %v, want !clear [número]", cmd.Usage)
	}

	if !cmd.RequiresMod {
		t.Error("RequiresMod should be true after RequireMod()")
	}
}

func TestCommandRegistryAliases(t *testing.T) {
	registry := NewCommandRegistry()

	handler := func(ctx *CommandContext) error { return nil }
	registry.Set(NewCommand("mute", "Silencia um usuário", "mod", handler).WithAliases("timeout"))
	registry.Set(NewCommand("warns", "Lista advertências", "mod", handler))

	if registry.Size() != 2 {
		t.Errorf("Size() = %d, want 2 (aliases don't count)", registry.Size())
	}

	byName, ok := registry.Get("mute")
	if !ok {
		t.Fatal("Get(mute) not found")
	}

	byAlias, ok := registry.Get("timeout")
	if !ok {
		t.Fatal("Get(timeout) alias not found")
	}

	if byName != byAlias {
		t.Error("alias should resolve to the same command")
	}

	if _, ok := registry.Get("foobar"); ok {
		t.Error("Get(foobar) should not resolve")
	}
}

// newTestClient builds a client with a stubbed permission resolver
func newTestClient(t *testing.T, perms int64) *ExtendedClient {
	t.Helper()

	c, err := NewClient("test-token", "!", nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	c.permsFor = func(m *discordgo.MessageCreate) (int64, error) {
		return perms, nil
	}
	return c
}

func newTestMessage(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        "msg-1",
			ChannelID: "chan-1",
			GuildID:   "guild-1",
			Content:   content,
			Author:    &discordgo.User{ID: "user-1", Username: "mod", Bot: false},
		},
	}
}

func TestHandleMessageDispatch(t *testing.T) {
	c := newTestClient(t, discordgo.PermissionManageMessages)

	invoked := make(chan []string, 1)
	c.Commands.Set(NewCommand("ban", "Bane um usuário", "mod", func(ctx *CommandContext) error {
		invoked <- ctx.Args
		return nil
	}).RequireMod())

	c.handleMessage(c.Session, newTestMessage("!ban 123456 spamming"))

	select {
	case args := <-invoked:
		if len(args) != 2 || args[0] != "123456" || args[1] != "spamming" {
			t.Errorf("handler args = %v, want [123456 spamming]", args)
		}
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestHandleMessageIgnores(t *testing.T) {
	c := newTestClient(t, discordgo.PermissionAdministrator)

	invoked := make(chan struct{}, 4)
	c.Commands.Set(NewCommand("ban", "Bane um usuário", "mod", func(ctx *CommandContext) error {
		invoked <- struct{}{}
		return nil
	}).RequireMod())

	// Unrecognized command: silent no-op
	c.handleMessage(c.Session, newTestMessage("!foobar"))

	// Non-command chatter
	c.handleMessage(c.Session, newTestMessage("hello everyone"))

	// Bot author
	botMsg := newTestMessage("!ban 123")
	botMsg.Author.Bot = true
	c.handleMessage(c.Session, botMsg)

	// Outside a guild
	dmMsg := newTestMessage("!ban 123")
	dmMsg.GuildID = ""
	c.handleMessage(c.Session, dmMsg)

	select {
	case <-invoked:
		t.Fatal("handler should not have been invoked")
	case <-time.After(100 * time.Millisecond):
	}
}
