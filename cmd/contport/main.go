package main

import (
	"os"

	"github.com/contport-dev/contport/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
