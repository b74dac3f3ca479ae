package logger

import (
	"testing"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger("", "")
	if l == nil {
		t.Fatal("Expected logger to be created, got nil")
	}

	// Test that logger methods don't panic
	l.Info("Test info message", "TEST")
	l.Warn("Test warning message", "TEST")
	l.Debug("Test debug message", "TEST")
	l.System("Test system message", "TEST")
	l.Success("Test success message", "TEST")

	l.Close()
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelCritical, "CRITICAL"},
		{LevelError, "ERROR"},
		{LevelWarn, "WARN"},
		{LevelSuccess, "SUCCESS"},
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{LevelSystem, "SYSTEM"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("LogLevel.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLogLevelDiscordColor(t *testing.T) {
	if LevelError.DiscordColor() != 0xFF0000 {
		t.Errorf("LevelError.DiscordColor() = %#x, want %#x", LevelError.DiscordColor(), 0xFF0000)
	}
	if LevelSuccess.DiscordColor() != 0x00FF00 {
		t.Errorf("LevelSuccess.DiscordColor() = %#x, want %#x", LevelSuccess.DiscordColor(), 0x00FF00)
	}
}

func TestGlobalLogger(t *testing.T) {
	l := Get()
	if l == nil {
		t.Fatal("Get() returned nil")
	}

	// Package-level helpers route through the same instance
	Info("global info", "TEST")
	Warn("global warn", "TEST")
}
