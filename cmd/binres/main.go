package main

import (
	"fmt"
	"os"

	"github.com/logicossoftware/go-binresource/internal/cli/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "binres: %v\n", err)
		os.Exit(1)
	}
}
