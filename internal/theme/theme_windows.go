//go:build windows

package theme

import "golang.org/x/sys/windows/registry"

const personalizePath = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

// Detect reads the system app-theme preference, defaulting to dark when the
// value is absent or unreadable.
func Detect() string {
	key, err := registry.OpenKey(registry.CURRENT_USER, personalizePath, registry.QUERY_VALUE)
	if err != nil {
		return Dark
	}
	defer key.Close()

	value, _, err := key.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return Dark
	}
	if value == 1 {
		return Light
	}
	return Dark
}
