package main

import (
	"os"

	"estate/cmd/estate/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
