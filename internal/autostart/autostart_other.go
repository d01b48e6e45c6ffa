//go:build !windows

package autostart

// IsEnabled always reports false off Windows.
func IsEnabled() bool { return false }

// Enable is unsupported off Windows.
func Enable() error { return ErrUnsupported }

// Disable is unsupported off Windows.
func Disable() error { return ErrUnsupported }
