//go:build !windows

package discovery

import "os"

// installRoots returns the directories applications commonly install to.
func installRoots() []string {
	return []string{"/usr/local/bin", "/opt"}
}

// isNativeExecutable accepts regular files with an execute bit set.
func (s *Scanner) isNativeExecutable(path string, d os.DirEntry) bool {
	info, err := d.Info()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}

// scanExtra has no registry equivalent off Windows.
func (s *Scanner) scanExtra() []App {
	return nil
}
