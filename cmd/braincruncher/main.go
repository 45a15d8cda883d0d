package main

import (
	"os"

	"svw.info/braincruncher/cmd/braincruncher/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
