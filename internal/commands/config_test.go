package commands

import (
	"testing"

	"github.com/diogo/agentchat/internal/config"
)

func TestApplyConfigValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		check   func(config.Config) bool
		wantErr bool
	}{
		{"server url", "server-url", "http://agent:9000", func(c config.Config) bool { return c.ServerURL == "http://agent:9000" }, false},
		{"chat path", "chat-path", "/v2/chat", func(c config.Config) bool { return c.ChatPath == "/v2/chat" }, false},
		{"user id", "user-id", "alice", func(c config.Config) bool { return c.UserID == "alice" }, false},
		{"timeout", "timeout", "30", func(c config.Config) bool { return c.TimeoutSeconds == 30 }, false},
		{"timeout not a number", "timeout", "soon", nil, true},
		{"rollback", "rollback", "true", func(c config.Config) bool { return c.RollbackOnFailure }, false},
		{"rollback bad bool", "rollback", "yes please", nil, true},
		{"clipboard", "clipboard", "true", func(c config.Config) bool { return c.CopyToClipboard }, false},
		{"verbose", "verbose", "true", func(c config.Config) bool { return c.Verbose }, false},
		{"style", "style", "light", func(c config.Config) bool { return c.MarkdownStyle == "light" }, false},
		{"unknown key", "theme", "dark", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			err := applyConfigValue(&cfg, tt.key, tt.value)

			if (err != nil) != tt.wantErr {
				t.Fatalf("applyConfigValue error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("config not updated for %s=%s: %+v", tt.key, tt.value, cfg)
			}
		})
	}
}

func TestGetConfig_FlagOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	serverFlag = "http://override:7000"
	userFlag = "bob"
	timeoutFlag = 15
	defer func() {
		serverFlag = ""
		userFlag = ""
		timeoutFlag = 0
	}()

	cfg, err := getConfig()
	if err != nil {
		t.Fatalf("getConfig failed: %v", err)
	}

	if cfg.ServerURL != "http://override:7000" {
		t.Errorf("ServerURL = %s", cfg.ServerURL)
	}
	if cfg.UserID != "bob" {
		t.Errorf("UserID = %s", cfg.UserID)
	}
	if cfg.TimeoutSeconds != 15 {
		t.Errorf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}
}

func TestGetConfig_RejectsInvalidOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	serverFlag = "not a url"
	defer func() { serverFlag = "" }()

	if _, err := getConfig(); err == nil {
		t.Error("expected error for invalid server flag")
	}
}
