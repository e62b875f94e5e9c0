package main

import (
	"os"

	"rag-intent-chat/cmd/chatctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
