// Package autostart registers the application to run at user login.
package autostart

import "errors"

// AppName is the registry value name identifying this application.
const AppName = "FavApp Starter"

// ErrUnsupported is returned on platforms without a login-launch mechanism
// this package knows how to drive.
var ErrUnsupported = errors.New("autostart: not supported on this platform")
