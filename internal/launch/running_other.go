//go:build !windows

package launch

import (
	"os"
	"path/filepath"
	"strings"
)

// IsRunning scans /proc for a command name containing the base name of path,
// case-insensitively. Best-effort: kernels truncate comm to 15 bytes, and
// platforms without /proc always report false.
func IsRunning(path string) bool {
	name := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	if name == "" || name == "." {
		return false
	}

	entries, err := os.ReadDir("/proc")
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() || !isNumeric(entry.Name()) {
			continue
		}
		comm, err := os.ReadFile(filepath.Join("/proc", entry.Name(), "comm"))
		if err != nil {
			continue
		}
		proc := strings.ToLower(strings.TrimSpace(string(comm)))
		if strings.Contains(proc, name) || strings.Contains(name, proc) {
			return true
		}
	}
	return false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
