// Package icon extracts the shell icon associated with a file into a plain
// RGBA buffer suitable for list-view display.
//
// Extraction is best-effort: every failure resolves to an error from the
// small taxonomy below, never a panic, and callers are expected to fall back
// to Default or Placeholder. Native handles acquired during a single call are
// always released before the call returns.
package icon

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// Canonical native icon sizes. Other sizes are extracted at the nearest
// native size and resampled.
const (
	SmallSize = 16
	LargeSize = 32
)

// Extraction failures. All resolve to "no icon available" for the caller.
var (
	ErrPathNotFound  = errors.New("icon: path does not exist")
	ErrShellQuery    = errors.New("icon: shell icon query failed")
	ErrNoColorBitmap = errors.New("icon: icon has no color bitmap")
	ErrPixelTransfer = errors.New("icon: pixel transfer failed")
)

// Extract returns the icon associated with path as a size x size RGBA image.
//
// The path may name any filesystem entry the shell can resolve an icon for;
// executables and shortcuts are the common cases. Missing paths fail fast
// with ErrPathNotFound before any native call is made.
func Extract(path string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon: size must be positive, got %d", size)
	}
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		return nil, ErrPathNotFound
	}
	return extract(path, size)
}

// ExtractOrFallback extracts the icon for path, substituting a lettered
// placeholder when no icon is available. The result is always size x size.
func ExtractOrFallback(path string, size int) *image.RGBA {
	img, err := Extract(path, size)
	if err != nil {
		return Placeholder(path, size)
	}
	return img
}
