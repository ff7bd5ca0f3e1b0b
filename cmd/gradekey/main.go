package main

import (
	"os"

	"github.com/gradekey-dev/gradekey/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
