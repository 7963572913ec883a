package main

import (
	"os"

	"github.com/mikey/avana-extractor/cmd/avana/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
