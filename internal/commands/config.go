package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/diogo/agentchat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show the current configuration, or change a setting with
'config set <key> <value>'.

Keys:
  server-url    Agent service base URL
  chat-path     Chat endpoint path
  user-id       Identifier sent with every exchange
  timeout       Exchange timeout in seconds
  rollback      Remove the user message when an exchange fails (true/false)
  clipboard     Copy one-shot replies to the clipboard (true/false)
  verbose       Print request timing on stderr (true/false)
  style         Markdown style for replies (dark, light, notty)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConfig(args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func showConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	path, _ := config.GetConfigPath()

	fmt.Printf("Config file: %s\n\n", path)
	fmt.Printf("  server-url  %s\n", cfg.ServerURL)
	fmt.Printf("  chat-path   %s\n", cfg.ChatPath)
	fmt.Printf("  user-id     %s\n", cfg.UserID)
	fmt.Printf("  timeout     %d\n", cfg.TimeoutSeconds)
	fmt.Printf("  rollback    %t\n", cfg.RollbackOnFailure)
	fmt.Printf("  clipboard   %t\n", cfg.CopyToClipboard)
	fmt.Printf("  verbose     %t\n", cfg.Verbose)
	fmt.Printf("  style       %s\n", cfg.MarkdownStyle)

	return nil
}

func setConfig(key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if err := applyConfigValue(&cfg, key, value); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}

// applyConfigValue mutates cfg according to a key/value pair
func applyConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "server-url":
		cfg.ServerURL = value
	case "chat-path":
		cfg.ChatPath = value
	case "user-id":
		cfg.UserID = value
	case "timeout":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeout must be a number: %q", value)
		}
		cfg.TimeoutSeconds = n
	case "rollback", "clipboard", "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false: %q", key, value)
		}
		switch key {
		case "rollback":
			cfg.RollbackOnFailure = b
		case "clipboard":
			cfg.CopyToClipboard = b
		case "verbose":
			cfg.Verbose = b
		}
	case "style":
		cfg.MarkdownStyle = value
	default:
		return fmt.Errorf("unknown config key: %q", key)
	}
	return nil
}
