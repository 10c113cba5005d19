//go:build !unix && !windows

package main

import "os/exec"

// Platforms without a scheduling-priority facility run children as-is.
func prepareLowPriority(*exec.Cmd) {}

func applyLowPriority(*exec.Cmd) {}
