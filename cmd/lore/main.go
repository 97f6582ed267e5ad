package main

import (
	"os"

	"github.com/fleetinglore/lore-cli/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
