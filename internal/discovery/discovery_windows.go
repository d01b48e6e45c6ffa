//go:build windows

package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// installRoots returns the directories installers commonly target.
func installRoots() []string {
	var roots []string
	for _, env := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
		if dir := os.Getenv(env); dir != "" {
			roots = append(roots, dir)
		}
	}
	if local := os.Getenv("LOCALAPPDATA"); local != "" {
		roots = append(roots, filepath.Join(local, "Programs"))
	}
	return roots
}

// isNativeExecutable is unused on Windows; .exe matching happens upstream.
func (s *Scanner) isNativeExecutable(path string, d os.DirEntry) bool {
	return false
}

// scanExtra reads the uninstall registry hives the way the control panel
// does: DisplayName plus an executable resolved from DisplayIcon or, failing
// that, the first non-uninstaller .exe under InstallLocation.
func (s *Scanner) scanExtra() []App {
	hives := []struct {
		key  registry.Key
		path string
	}{
		{registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
		{registry.LOCAL_MACHINE, `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`},
		{registry.CURRENT_USER, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
	}

	var apps []App
	for _, hive := range hives {
		key, err := registry.OpenKey(hive.key, hive.path, registry.READ)
		if err != nil {
			continue
		}
		names, err := key.ReadSubKeyNames(-1)
		if err != nil {
			key.Close()
			continue
		}
		for _, name := range names {
			if app, ok := readUninstallEntry(hive.key, hive.path+`\`+name); ok {
				apps = append(apps, app)
			}
		}
		key.Close()
	}
	return apps
}

func readUninstallEntry(root registry.Key, path string) (App, bool) {
	key, err := registry.OpenKey(root, path, registry.READ)
	if err != nil {
		return App{}, false
	}
	defer key.Close()

	display, _, err := key.GetStringValue("DisplayName")
	if err != nil || display == "" {
		return App{}, false
	}

	exe := ""
	if icon, _, err := key.GetStringValue("DisplayIcon"); err == nil {
		// DisplayIcon may carry a ",index" suffix.
		exe = strings.Trim(strings.SplitN(icon, ",", 2)[0], `" `)
	}
	if !strings.EqualFold(filepath.Ext(exe), ".exe") {
		exe = ""
		if loc, _, err := key.GetStringValue("InstallLocation"); err == nil && loc != "" {
			exe = firstExecutableUnder(loc)
		}
	}
	if exe == "" {
		return App{}, false
	}
	if _, err := os.Stat(exe); err != nil || !strings.EqualFold(filepath.Ext(exe), ".exe") {
		return App{}, false
	}
	return App{Name: display, Path: exe}, true
}

func firstExecutableUnder(dir string) string {
	found := ""
	filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		base := strings.ToLower(filepath.Base(p))
		if strings.HasSuffix(base, ".exe") && !strings.HasPrefix(base, "unins") {
			found = p
			return filepath.SkipAll
		}
		return nil
	})
	return found
}
