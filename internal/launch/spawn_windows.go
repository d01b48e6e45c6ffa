//go:build windows

package launch

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// spawn hands the invocation to cmd.exe so shortcuts and installer files
// resolve the same way the shell resolves them. The child is detached from
// our console and process group, its stdio discarded, and the process handle
// released immediately.
func spawn(invocation, dir string) error {
	cmd := exec.Command("cmd.exe")
	cmd.Dir = dir
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CmdLine:       `cmd.exe /c start "" ` + invocation,
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
