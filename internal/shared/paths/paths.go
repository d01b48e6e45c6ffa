// Package paths provides standardized filesystem locations so every component
// reads and writes the same per-user files.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppDirName is the per-user directory holding all FavApp Starter state.
const AppDirName = "FavApp Starter"

// File names inside the app directory.
const (
	ConfigFileName = "config.json"
	LogFileName    = "debug.log"
)

// ConfigDir returns the per-user configuration directory, creating it if needed.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	dir := filepath.Join(base, AppDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}

// ConfigFile returns the path of the profile store file.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LogFile returns the path of the debug log file.
func LogFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}
