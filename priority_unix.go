//go:build unix

package main

import (
	"os/exec"

	"golang.org/x/sys/unix"
)

// Priority can only be adjusted once the child exists, so the pre-start hook
// does nothing on unix.
func prepareLowPriority(*exec.Cmd) {}

// applyLowPriority renices the started child. Best-effort: on failure the
// child simply stays at normal priority.
func applyLowPriority(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	unix.Setpriority(unix.PRIO_PROCESS, cmd.Process.Pid, 10)
}
