//go:build !windows

package assoc

// IsRegistered always reports false off Windows.
func IsRegistered() bool { return false }

// Register is unsupported off Windows.
func Register(iconPath string) error { return ErrUnsupported }

// Unregister is unsupported off Windows.
func Unregister() error { return ErrUnsupported }
