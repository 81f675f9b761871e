//go:build windows

package launcher

import (
	"os/exec"
	"syscall"
)

// DETACHED_PROCESS creates the child without a console so it runs
// independently of the launcher's window.
const DETACHED_PROCESS = 0x00000008

// detach separates the child from the launcher's console and process group.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP | DETACHED_PROCESS,
	}
}
