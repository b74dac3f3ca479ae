package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	os.Setenv("botToken", "test-token")
	os.Setenv("commandPrefix", "?")
	os.Setenv("PORT", "3001")
	os.Setenv("enviroment", "test")
	defer func() {
		os.Unsetenv("botToken")
		os.Unsetenv("commandPrefix")
		os.Unsetenv("PORT")
		os.Unsetenv("enviroment")
	}()

	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.CommandPrefix != "?" {
		t.Errorf("CommandPrefix = %v, want %v", config.CommandPrefix, "?")
	}

	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}
}

func TestLoadWithoutToken(t *testing.T) {
	os.Unsetenv("botToken")
	resetForTesting()

	_, err := Load()
	if err == nil {
		t.Fatal("Load() without botToken should return an error")
	}
}

func TestDefaultPrefix(t *testing.T) {
	os.Setenv("botToken", "test-token")
	os.Unsetenv("commandPrefix")
	defer os.Unsetenv("botToken")

	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.CommandPrefix != "!" {
		t.Errorf("CommandPrefix = %v, want %v", config.CommandPrefix, "!")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}
