//go:build !windows

package icon

import "image"

// extract reports ErrShellQuery on platforms without a shell icon facility.
// The existence fast-fail in Extract still applies, so callers see the same
// taxonomy everywhere.
func extract(path string, size int) (*image.RGBA, error) {
	return nil, ErrShellQuery
}
