//go:build !windows

package launch

import (
	"os/exec"
	"syscall"
)

// spawn hands the invocation to the shell so the raw argument string gets
// the same word splitting on every platform. The child runs in its own
// process group with stdio discarded, and the handle is released right away.
func spawn(invocation, dir string) error {
	cmd := exec.Command("/bin/sh", "-c", invocation)
	cmd.Dir = dir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
