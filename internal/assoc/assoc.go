// Package assoc manages the Windows file association for profile files.
package assoc

import "errors"

// Association identity for exported profile files.
const (
	Extension = ".favapp"
	ProgID    = "FavAppStarter.Profile"
	TypeName  = "FavApp Profile"
)

// ErrUnsupported is returned on platforms without a registry-backed
// association mechanism.
var ErrUnsupported = errors.New("assoc: not supported on this platform")
