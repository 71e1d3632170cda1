package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	return tmpDir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ServerURL != "http://localhost:8000" {
		t.Errorf("ServerURL = %s", cfg.ServerURL)
	}
	if cfg.ChatPath != "/api/chat" {
		t.Errorf("ChatPath = %s", cfg.ChatPath)
	}
	if cfg.UserID == "" {
		t.Error("UserID is empty")
	}
	if cfg.TimeoutSeconds <= 0 {
		t.Error("TimeoutSeconds should have a positive default")
	}
	if cfg.RollbackOnFailure {
		t.Error("RollbackOnFailure should default to false")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"https server", func(c *Config) { c.ServerURL = "https://agent.example.com" }, false},
		{"bad scheme", func(c *Config) { c.ServerURL = "ftp://host" }, true},
		{"missing host", func(c *Config) { c.ServerURL = "http://" }, true},
		{"relative path", func(c *Config) { c.ChatPath = "api/chat" }, true},
		{"blank user", func(c *Config) { c.UserID = "   " }, true},
		{"negative timeout", func(c *Config) { c.TimeoutSeconds = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	withTempHome(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// Missing file falls back to defaults.
	if cfg.ServerURL != DefaultConfig().ServerURL {
		t.Errorf("ServerURL = %s, want default", cfg.ServerURL)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	withTempHome(t)

	cfg := DefaultConfig()
	cfg.ServerURL = "http://agent.internal:9000"
	cfg.UserID = "tester"
	cfg.RollbackOnFailure = true

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.ServerURL != "http://agent.internal:9000" {
		t.Errorf("ServerURL = %s", loaded.ServerURL)
	}
	if loaded.UserID != "tester" {
		t.Errorf("UserID = %s", loaded.UserID)
	}
	if !loaded.RollbackOnFailure {
		t.Error("RollbackOnFailure not persisted")
	}
}

func TestSaveConfig_FileMode(t *testing.T) {
	tmpDir := withTempHome(t)

	if err := SaveConfig(DefaultConfig()); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	path := filepath.Join(tmpDir, ".agentchat", "config.json")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	if info.Mode().Perm() != 0o600 {
		t.Errorf("config file mode = %o, want 600", info.Mode().Perm())
	}
}

func TestLoadConfig_Corrupted(t *testing.T) {
	tmpDir := withTempHome(t)

	dir := filepath.Join(tmpDir, ".agentchat")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err == nil {
		t.Error("expected error for corrupted config")
	}

	// Corrupted file falls back to defaults rather than partial state.
	if cfg.ServerURL != DefaultConfig().ServerURL {
		t.Errorf("ServerURL = %s, want default", cfg.ServerURL)
	}
}
