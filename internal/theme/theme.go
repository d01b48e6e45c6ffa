// Package theme resolves the effective UI theme preference.
package theme

// Supported theme values.
const (
	Dark   = "dark"
	Light  = "light"
	System = "system"
)

// Effective maps a stored preference to a concrete theme, consulting the OS
// preference when the value is "system" or unknown.
func Effective(configured string) string {
	switch configured {
	case Dark, Light:
		return configured
	default:
		return Detect()
	}
}
