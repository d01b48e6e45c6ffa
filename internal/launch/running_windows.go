//go:build windows

package launch

import (
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

// IsRunning reports whether any process in the system process list matches
// the base name of path, case-insensitively. Best-effort: name collisions
// between different binaries produce false positives, and processes this
// package spawned are not tracked specially.
func IsRunning(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	if name == "" || name == "." {
		return false
	}

	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return false
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	for err := windows.Process32First(snapshot, &entry); err == nil; err = windows.Process32Next(snapshot, &entry) {
		exe := strings.ToLower(windows.UTF16ToString(entry.ExeFile[:]))
		if strings.Contains(exe, name) {
			return true
		}
	}
	return false
}
