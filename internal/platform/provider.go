package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all window-manager backends for the current OS.
type Provider struct {
	Querier WindowQuerier
	Focuser WindowFocuser
	Runner  CommandRunner
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("runraisenext is not supported on %s/%s; supported: linux with an EWMH-compatible window manager", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/x11/init.go for the Linux registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
