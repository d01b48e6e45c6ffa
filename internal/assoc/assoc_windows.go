//go:build windows

package assoc

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const classesPath = `Software\Classes\`

const shcneAssocChanged = 0x08000000

var procSHChangeNotify = windows.NewLazySystemDLL("shell32.dll").NewProc("SHChangeNotify")

// IsRegistered reports whether the extension currently maps to our ProgID.
func IsRegistered() bool {
	key, err := registry.OpenKey(registry.CURRENT_USER, classesPath+Extension, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer key.Close()

	value, _, err := key.GetStringValue("")
	return err == nil && value == ProgID
}

// Register associates the extension with the current executable. An optional
// iconPath overrides the executable's own icon.
func Register(iconPath string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	if iconPath == "" {
		iconPath = exe + ",0"
	}

	entries := []struct {
		path  string
		value string
	}{
		{classesPath + Extension, ProgID},
		{classesPath + ProgID, TypeName},
		{classesPath + ProgID + `\DefaultIcon`, iconPath},
		{classesPath + ProgID + `\shell\open\command`, `"` + exe + `" "%1"`},
	}
	for _, entry := range entries {
		if err := setDefaultValue(entry.path, entry.value); err != nil {
			return err
		}
	}

	notifyShell()
	return nil
}

// Unregister removes the association keys. Missing keys are ignored.
func Unregister() error {
	paths := []string{
		classesPath + ProgID + `\shell\open\command`,
		classesPath + ProgID + `\shell\open`,
		classesPath + ProgID + `\shell`,
		classesPath + ProgID + `\DefaultIcon`,
		classesPath + ProgID,
		classesPath + Extension,
	}
	for _, path := range paths {
		if err := registry.DeleteKey(registry.CURRENT_USER, path); err != nil && err != registry.ErrNotExist {
			return fmt.Errorf("delete %s: %w", path, err)
		}
	}

	notifyShell()
	return nil
}

func setDefaultValue(path, value string) error {
	key, _, err := registry.CreateKey(registry.CURRENT_USER, path, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer key.Close()

	if err := key.SetStringValue("", value); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	return nil
}

// notifyShell tells Explorer the association set changed so icons refresh
// without a logoff.
func notifyShell() {
	procSHChangeNotify.Call(shcneAssocChanged, 0, 0, 0)
}
