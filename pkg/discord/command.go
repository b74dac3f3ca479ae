// Package discord provides command types and structures.
package discord

import (
	"sync"
)

// Command represents a prefix text command
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Usage       string
	Category    string
	RequiresMod bool
	OwnerOnly   bool
	Run         CommandRunFunc
}

// CommandRunFunc is the function type for command execution
type CommandRunFunc func(ctx *CommandContext) error

// NewCommand creates a new Command with required fields
func NewCommand(name, description, category string, run CommandRunFunc) *Command {
	return &Command{
		Name:        name,
		Description: description,
		Category:    category,
		Run:         run,
	}
}

// WithAliases sets alternative names for the command
func (c *Command) WithAliases(aliases ...string) *Command {
	c.Aliases = aliases
	return c
}

// WithUsage sets the usage hint shown in rejection and help messages
func (c *Command) WithUsage(usage string) *Command {
	c.Usage = usage
	return c
}

// RequireMod marks the command as gated behind moderator permissions
func (c *Command) RequireMod() *Command {
	c.RequiresMod = true
	return c
}

// AsOwnerOnly restricts the command to the configured bot owner
func (c *Command) AsOwnerOnly() *Command {
	c.OwnerOnly = true
	return c
}

// CommandRegistry holds registered commands, indexed by name and alias
type CommandRegistry struct {
	commands map[string]*Command
	byName   map[string]*Command
	mu       sync.RWMutex
}

// NewCommandRegistry creates a new CommandRegistry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[string]*Command),
		byName:   make(map[string]*Command),
	}
}

// Set registers a command under its name and all its aliases
func (r *CommandRegistry) Set(cmd *Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[cmd.Name] = cmd
	r.commands[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.commands[alias] = cmd
	}
}

// Get retrieves a command by name or alias
func (r *CommandRegistry) Get(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Size returns the number of registered commands (aliases not counted)
func (r *CommandRegistry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// All returns all registered commands keyed by primary name
func (r *CommandRegistry) All() map[string]*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make(map[string]*Command, len(r.byName))
	for k, v := range r.byName {
		result[k] = v
	}
	return result
}
