//go:build linux

package x11

import (
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// ShellRunner implements platform.CommandRunner by handing the command to
// the shell and detaching. The launched app outlives this process and its
// exit code is not observed.
type ShellRunner struct{}

// Run starts the command and releases it.
func (r *ShellRunner) Run(command string) error {
	log.Debug().Str("command", command).Msg("launching")
	cmd := exec.Command("sh", "-c", command)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %q: %w", command, err)
	}
	return cmd.Process.Release()
}
