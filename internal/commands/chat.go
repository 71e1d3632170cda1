package commands

import (
	"github.com/spf13/cobra"

	"github.com/diogo/agentchat/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the agent service.

The conversation lives for the duration of the session and the full
history is sent to the service on every exchange. Type 'exit', 'quit',
or press Ctrl+C to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}

	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}

	return tui.RunChat(ctrl, cfg.ServerURL, cfg.MarkdownStyle)
}
