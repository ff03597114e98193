// Package x11 provides Linux window-manager support by shelling out to
// wmctrl and xprop, which work with any EWMH-compatible window manager.
// On other platforms the package compiles as an empty stub and no
// provider is registered.
package x11
