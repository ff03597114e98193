package main

import (
	"github.com/mj1618/runraisenext/cmd"

	// Registers the platform provider for the current OS.
	_ "github.com/mj1618/runraisenext/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
