// Package commands provides CLI commands for agentchat.
package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/diogo/agentchat/internal/api"
	"github.com/diogo/agentchat/internal/config"
	"github.com/diogo/agentchat/internal/session"
)

var (
	// Global flags
	serverFlag  string
	userFlag    string
	timeoutFlag int
	outputFlag  string
	fileFlag    string
	rawFlag     bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "agentchat [prompt]",
	Short: "Chat client for an agent service",
	Long: `agentchat is a terminal client for an agent chat service. It keeps
the running conversation locally and sends the full history to the
service on every exchange.

Examples:
  agentchat chat                     Start interactive chat
  agentchat "What is Go?"            Send a single query
  agentchat -f prompt.md             Read prompt from file
  cat prompt.md | agentchat          Read prompt from stdin
  agentchat "Hello" -o response.md   Save response to file
  agentchat --server http://host:8000 "Hello"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("agentchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), rawFlag || !isStdoutTTY())
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), rawFlag || !isStdoutTTY())
		}

		if len(args) > 0 {
			return runQuery(args[0], rawFlag || !isStdoutTTY())
		}

		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "", "Agent service base URL (default from config)")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User identifier sent with every exchange")
	rootCmd.PersistentFlags().IntVar(&timeoutFlag, "timeout", 0, "Exchange timeout in seconds")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().BoolVarP(&rawFlag, "raw", "r", false, "Print the raw reply without decoration")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
}

// getConfig loads the configuration and applies flag overrides
func getConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return cfg, err
	}

	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}
	if userFlag != "" {
		cfg.UserID = userFlag
	}
	if timeoutFlag > 0 {
		cfg.TimeoutSeconds = timeoutFlag
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newController wires a session controller against the configured
// agent service.
func newController(cfg config.Config) (*session.Controller, error) {
	client, err := api.NewClient(cfg.ServerURL, cfg.UserID,
		api.WithPath(cfg.ChatPath),
		api.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	opts := []session.ControllerOption{}
	if cfg.RollbackOnFailure {
		opts = append(opts, session.WithRollbackOnFailure(true))
	}

	return session.NewController(session.NewStore(), client, opts...), nil
}
