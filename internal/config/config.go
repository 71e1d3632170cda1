// Package config handles configuration for agentchat.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the user configuration
type Config struct {
	// ServerURL is the base URL of the agent service (scheme://host:port).
	ServerURL string `json:"server_url"`
	// ChatPath is the path of the chat endpoint on the server.
	ChatPath string `json:"chat_path"`
	// UserID is the identifier sent with every exchange.
	UserID string `json:"user_id"`
	// TimeoutSeconds bounds a single exchange. 0 means the default.
	TimeoutSeconds int `json:"timeout_seconds"`
	// RollbackOnFailure removes the optimistically appended user message
	// when an exchange fails. Off by default: the message is retained so
	// the user can see what was sent.
	RollbackOnFailure bool `json:"rollback_on_failure"`
	// CopyToClipboard copies one-shot replies to the system clipboard.
	CopyToClipboard bool `json:"copy_to_clipboard"`
	// Verbose enables request timing output on stderr.
	Verbose bool `json:"verbose"`
	// MarkdownStyle is the glamour style used for assistant replies
	// ("dark", "light", "notty", ...).
	MarkdownStyle string `json:"markdown_style"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		ServerURL:      "http://localhost:8000",
		ChatPath:       "/api/chat",
		UserID:         "local",
		TimeoutSeconds: 120,
		MarkdownStyle:  "dark",
	}
}

// Validate checks that the configuration can produce a usable endpoint
func (c Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("invalid server URL %q: %w", c.ServerURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid server URL %q: scheme must be http or https", c.ServerURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid server URL %q: missing host", c.ServerURL)
	}
	if !strings.HasPrefix(c.ChatPath, "/") {
		return fmt.Errorf("invalid chat path %q: must start with /", c.ChatPath)
	}
	if strings.TrimSpace(c.UserID) == "" {
		return fmt.Errorf("user ID cannot be empty")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	return nil
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".agentchat"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
