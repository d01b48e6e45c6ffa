//go:build !windows

package theme

// Detect defaults to dark where no system preference is readable.
func Detect() string {
	return Dark
}
