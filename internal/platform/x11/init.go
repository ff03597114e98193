//go:build linux

package x11

import "github.com/mj1618/runraisenext/internal/platform"

func init() {
	platform.NewProviderFunc = NewProvider
}

// NewProvider returns the Linux provider.
func NewProvider() (*platform.Provider, error) {
	return &platform.Provider{
		Querier: &Querier{},
		Focuser: &Focuser{},
		Runner:  &ShellRunner{},
	}, nil
}
