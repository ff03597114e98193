package platform

import "github.com/mj1618/runraisenext/internal/model"

// WindowQuerier reads the current window-manager state.
type WindowQuerier interface {
	// ListWindows returns the open windows. The order is whatever the
	// window manager reports; it only needs to be stable within one call.
	ListWindows() ([]model.Window, error)

	// FocusedWindow returns the currently focused window, or nil when
	// nothing is focused or focus cannot be determined.
	FocusedWindow() (*model.Window, error)
}

// WindowFocuser switches focus to a window. Focusing is best-effort: the
// window may have closed since it was listed, and callers do not
// re-verify.
type WindowFocuser interface {
	FocusWindow(w model.Window) error
}

// CommandRunner launches an app's command. The command runs detached;
// its exit code is not observed.
type CommandRunner interface {
	Run(command string) error
}
