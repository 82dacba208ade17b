//go:build windows

package platform

import (
	"os/exec"
	"syscall"
)

// HideWindow keeps the child from opening a console window. The launcher is
// a GUI-subsystem binary, so a console would otherwise flash up for node.exe.
func HideWindow(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.HideWindow = true
}
