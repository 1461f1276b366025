package main

import (
	"os"

	"github.com/aamirshehzad9/MISoft-sub001/internal/commands"
)

// Build information, injected via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := commands.NewRootCommand(version, commit).Execute(); err != nil {
		os.Exit(1)
	}
}
