package main

import (
	"os"

	"github.com/vancomm/minefield-annotator/cmd/minefield/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
