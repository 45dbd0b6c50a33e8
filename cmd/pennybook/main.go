package main

import (
	"os"

	"github.com/pennybook-dev/pennybook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
