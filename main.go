package main

import "github.com/diogo/agentchat/internal/commands"

func main() {
	commands.Execute()
}
