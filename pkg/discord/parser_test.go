package discord

import (
	"testing"
	"time"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantName string
		wantArgs []string
		wantOK   bool
	}{
		{"simple", "!ban", "ban", []string{}, true},
		{"with args", "!ban @user spamming a lot", "ban", []string{"@user", "spamming", "a", "lot"}, true},
		{"case folded", "!BAN @user", "ban", []string{"@user"}, true},
		{"extra whitespace", "!mute   @user   10m", "mute", []string{"@user", "10m"}, true},
		{"prefix only", "!", "", nil, false},
		{"prefix and spaces", "!   ", "", nil, false},
		{"no prefix", "ban @user", "", nil, false},
		{"plain chatter", "hello there", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args, ok := ParseCommand(tt.content, "!")
			if ok != tt.wantOK {
				t.Fatalf("ParseCommand(%q) ok = %v, want %v", tt.content, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if name != tt.wantName {
				t.Errorf("ParseCommand(%q) name = %q, want %q", tt.content, name, tt.wantName)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("ParseCommand(%q) args = %v, want %v", tt.content, args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("ParseCommand(%q) args[%d] = %q, want %q", tt.content, i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestParseCommandCustomPrefix(t *testing.T) {
	name, _, ok := ParseCommand("?kick @user", "?")
	if !ok || name != "kick" {
		t.Errorf("ParseCommand with ? prefix = (%q, %v), want (kick, true)", name, ok)
	}

	if _, _, ok := ParseCommand("!kick @user", "?"); ok {
		t.Error("ParseCommand should not match a different prefix")
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		token  string
		wantMs int64
	}{
		{"10m", 600000},
		{"2h", 7200000},
		{"3d", 259200000},
		{"1m", 60000},
		{"abc", 600000},  // malformed: default
		{"", 600000},     // absent: default
		{"10x", 600000},  // unknown unit: default
		{"m10", 600000},  // wrong order: default
		{"-5m", 600000},  // negative: default
		{"1h30m", 600000}, // compound not supported: default
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := ParseDuration(tt.token)
			if got.Milliseconds() != tt.wantMs {
				t.Errorf("ParseDuration(%q) = %dms, want %dms", tt.token, got.Milliseconds(), tt.wantMs)
			}
		})
	}
}

func TestDefaultMuteDuration(t *testing.T) {
	if DefaultMuteDuration != 10*time.Minute {
		t.Errorf("DefaultMuteDuration = %v, want 10m", DefaultMuteDuration)
	}
}
