package main

import (
	"fmt"
	"os"

	"github.com/sfindeisen/source-tree-stats/cmd/source-tree-stats/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
