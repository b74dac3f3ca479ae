// Package discord provides the Discord bot client and the prefix command
// framework: parsing, permission gating, dispatch and response helpers.
package discord

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultMuteDuration is applied when the duration token is absent or malformed
const DefaultMuteDuration = 10 * time.Minute

var durationPattern = regexp.MustCompile(`^(\d+)([mhd])$`)

// ParseCommand splits a raw message into a command name and its arguments.
// The message must start with the prefix; the first token is case-folded into
// the command name. There is no quoting: arguments split on whitespace.
func ParseCommand(content, prefix string) (name string, args []string, ok bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}

	fields := strings.Fields(strings.TrimSpace(content[len(prefix):]))
	if len(fields) == 0 {
		// Prefix alone matches no command
		return "", nil, false
	}

	return strings.ToLower(fields[0]), fields[1:], true
}

// TryParseDuration parses a compact duration token ("10m", "2h", "3d") and
// reports whether the token was a valid duration at all. Use this when the
// caller needs to know if the token should be consumed as a duration or left
// as part of the reason text.
func TryParseDuration(token string) (time.Duration, bool) {
	match := durationPattern.FindStringSubmatch(token)
	if match == nil {
		return 0, false
	}
	return ParseDuration(token), true
}

// FormatDuration renders a duration in a compact human form for embeds
func FormatDuration(d time.Duration) string {
	switch {
	case d >= 24*time.Hour && d%(24*time.Hour) == 0:
		return strconv.Itoa(int(d/(24*time.Hour))) + "d"
	case d >= time.Hour && d%time.Hour == 0:
		return strconv.Itoa(int(d/time.Hour)) + "h"
	default:
		return strconv.Itoa(int(d/time.Minute)) + "m"
	}
}

// ParseDuration converts a compact duration token ("10m", "2h", "3d") into a
// time.Duration. Malformed or absent tokens fall back to DefaultMuteDuration
// instead of erroring, so a typoed duration never blocks the command.
func ParseDuration(token string) time.Duration {
	match := durationPattern.FindStringSubmatch(token)
	if match == nil {
		return DefaultMuteDuration
	}

	value, err := strconv.Atoi(match[1])
	if err != nil {
		return DefaultMuteDuration
	}

	switch match[2] {
	case "m":
		return time.Duration(value) * time.Minute
	case "h":
		return time.Duration(value) * time.Hour
	case "d":
		return time.Duration(value) * 24 * time.Hour
	}
	return DefaultMuteDuration
}
