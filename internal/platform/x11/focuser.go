//go:build linux

package x11

import (
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"

	"github.com/mj1618/runraisenext/internal/model"
)

// Focuser implements platform.WindowFocuser via `wmctrl -i -a`.
type Focuser struct{}

// FocusWindow activates the window, switching desktops if necessary.
func (f *Focuser) FocusWindow(w model.Window) error {
	log.Debug().Str("id", w.ID).Str("title", w.Title).Msg("focusing window")
	if err := exec.Command("wmctrl", "-i", "-a", w.ID).Run(); err != nil {
		return fmt.Errorf("wmctrl -i -a %s: %w", w.ID, err)
	}
	return nil
}
