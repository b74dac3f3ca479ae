// Package discord provides the Discord bot client and related structures.
// It wraps discordgo with additional functionality for command and event handling.
package discord

import (
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/config"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/models"
	"github.com/PancyStudios/PancyModGo/pkg/warns"
	"github.com/bwmarrin/discordgo"
)

// DiscordGoLogger wraps the custom logger to implement discordgo.Logger
// Note: discordgo.Logger is a function, not an interface
func init() {
	discordgo.Logger = func(msgL int, caller int, format string, a ...interface{}) {
		logger.Info(fmt.Sprintf(format, a...), "DiscordGo")
	}
}

// ExtendedClient wraps discordgo.Session with the prefix command framework
type ExtendedClient struct {
	Session      *discordgo.Session
	Commands     *CommandRegistry
	EventHandler *EventHandler
	Warns        warns.Store
	StartTime    time.Time

	prefix      string
	actionSinks []func(models.ModActionEvent)
	sinkMu      sync.RWMutex

	// permsFor resolves the author's channel permissions; replaced in tests
	permsFor func(m *discordgo.MessageCreate) (int64, error)

	mu      sync.RWMutex
	isReady bool
}

var (
	client *ExtendedClient
	once   sync.Once
)

// Init initializes the global Discord client
func Init(token, prefix string, store warns.Store) (*ExtendedClient, error) {
	var err error
	once.Do(func() {
		client, err = NewClient(token, prefix, store)
	})
	return client, err
}

// Get returns the global Discord client
func Get() *ExtendedClient {
	return client
}

// NewClient creates a new ExtendedClient
func NewClient(token, prefix string, store warns.Store) (*ExtendedClient, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	// Set intents: moderation needs message content and member data
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMembers |
		discordgo.IntentGuildModeration

	session.ShardCount = 1
	session.SyncEvents = false
	session.StateEnabled = true
	session.LogLevel = discordgo.LogWarning

	c := &ExtendedClient{
		Session:  session,
		Commands: NewCommandRegistry(),
		Warns:    store,
		prefix:   prefix,
		isReady:  false,
	}

	c.permsFor = func(m *discordgo.MessageCreate) (int64, error) {
		return session.UserChannelPermissions(m.Author.ID, m.ChannelID)
	}

	c.EventHandler = NewEventHandler(c)

	return c, nil
}

// Prefix returns the configured command prefix
func (c *ExtendedClient) Prefix() string {
	return c.prefix
}

// Start opens the gateway connection and begins routing commands
func (c *ExtendedClient) Start() error {
	c.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		c.mu.Lock()
		c.isReady = true
		c.mu.Unlock()

		logger.Success("Bot conectado como: "+r.User.Username, "Client")
	})

	c.Session.AddHandler(c.handleMessage)

	c.StartTime = time.Now()

	return c.Session.Open()
}

// handleMessage routes inbound messages through the command interpreter.
// Anything that is not a recognized prefixed command from a human in a guild
// is ignored without response.
func (c *ExtendedClient) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID == "" {
		return
	}

	name, args, ok := ParseCommand(m.Content, c.prefix)
	if !ok {
		return
	}

	cmd, ok := c.Commands.Get(name)
	if !ok {
		// Unrecognized command: silent no-op
		return
	}

	perms, err := c.permsFor(m)
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudieron resolver permisos de %s: %v", m.Author.ID, err), "Client")
		perms = 0
	}

	ctx := NewCommandContext(s, m, c, args, perms)

	if cmd.OwnerOnly && m.Author.ID != config.Get().OwnerID {
		return
	}

	if cmd.RequiresMod && !HasModPermission(perms) {
		ctx.Reply("❌ Você não tem permissão para usar este comando!")
		return
	}

	go func() {
		defer errors.RecoverMiddleware()()

		if err := cmd.Run(ctx); err != nil {
			logger.Error(fmt.Sprintf("Error ejecutando comando %s: %v", cmd.Name, err), "Client")
			ctx.Reply("❌ Ocorreu um erro ao executar o comando!")
		}
	}()
}

// AddActionSink registers a consumer for moderation action events
func (c *ExtendedClient) AddActionSink(sink func(models.ModActionEvent)) {
	c.sinkMu.Lock()
	defer c.sinkMu.Unlock()
	c.actionSinks = append(c.actionSinks, sink)
}

// publishAction fans a moderation event out to all sinks asynchronously
func (c *ExtendedClient) publishAction(event models.ModActionEvent) {
	c.sinkMu.RLock()
	sinks := make([]func(models.ModActionEvent), len(c.actionSinks))
	copy(sinks, c.actionSinks)
	c.sinkMu.RUnlock()

	for _, sink := range sinks {
		go func(fn func(models.ModActionEvent)) {
			defer errors.RecoverMiddleware()()
			fn(event)
		}(sink)
	}
}

// Stop stops the bot and closes the session
func (c *ExtendedClient) Stop() error {
	c.mu.Lock()
	c.isReady = false
	c.mu.Unlock()

	if c.Session != nil {
		return c.Session.Close()
	}
	return nil
}

// IsReady returns true if the bot is ready
func (c *ExtendedClient) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isReady
}

// GuildCount returns the number of guilds the bot is in
func (c *ExtendedClient) GuildCount() int {
	if c.Session == nil || c.Session.State == nil {
		return 0
	}
	c.Session.State.RLock()
	defer c.Session.State.RUnlock()
	return len(c.Session.State.Guilds)
}

// GetConfig returns the bot configuration
func (c *ExtendedClient) GetConfig() *config.Config {
	return config.Get()
}
