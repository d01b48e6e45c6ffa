package paths

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// redirectConfigDir keeps the test from touching the real user profile.
func redirectConfigDir(t *testing.T) {
	t.Helper()
	switch runtime.GOOS {
	case "windows":
		t.Setenv("AppData", t.TempDir())
	case "darwin":
		t.Setenv("HOME", t.TempDir())
	default:
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	}
}

func TestConfigFile(t *testing.T) {
	redirectConfigDir(t)

	path, err := ConfigFile()
	if err != nil {
		t.Fatalf("ConfigFile: %v", err)
	}
	if filepath.Base(path) != ConfigFileName {
		t.Errorf("unexpected file name in %q", path)
	}
	if !strings.Contains(path, AppDirName) {
		t.Errorf("path %q missing app dir", path)
	}
}

func TestLogFileSharesDir(t *testing.T) {
	redirectConfigDir(t)

	cfgPath, err := ConfigFile()
	if err != nil {
		t.Fatal(err)
	}
	logPath, err := LogFile()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(cfgPath) != filepath.Dir(logPath) {
		t.Errorf("config and log dirs differ: %q vs %q", cfgPath, logPath)
	}
}
