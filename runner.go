package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// runOutcome is what a git command produced when it could be run at all.
type runOutcome struct {
	output   string // combined stdout and stderr
	exitCode int
}

// gitRunner runs a single git command in a repository's working directory,
// bounded by timeout. A non-zero exit code is not an error: errors mean the
// command timed out or could not be run at all.
type gitRunner interface {
	Run(dir string, timeout time.Duration, args ...string) (runOutcome, error)
}

// execRunner shells out to the git binary. Children run at reduced
// scheduling priority where the platform supports it and are killed when the
// timeout expires.
type execRunner struct{}

func (execRunner) Run(dir string, timeout time.Duration, args ...string) (runOutcome, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	// Bound how long Wait blocks on output collection after the kill.
	cmd.WaitDelay = time.Second
	prepareLowPriority(cmd)

	if err := cmd.Start(); err != nil {
		return runOutcome{}, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	applyLowPriority(cmd)

	waitErr := cmd.Wait()
	return classifyWait(ctx.Err(), waitErr, buf.String(), args)
}

// classifyWait maps a finished child's wait error to an outcome. The
// deadline only matters when the child was killed; a command that completed
// just as the deadline expired still counts as having run.
func classifyWait(ctxErr, waitErr error, output string, args []string) (runOutcome, error) {
	if waitErr == nil {
		return runOutcome{output: output}, nil
	}
	if ctxErr == context.DeadlineExceeded {
		return runOutcome{output: output}, fmt.Errorf("git %s: %w", strings.Join(args, " "), context.DeadlineExceeded)
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return runOutcome{output: output, exitCode: exitErr.ExitCode()}, nil
	}
	return runOutcome{output: output}, fmt.Errorf("git %s: %w", strings.Join(args, " "), waitErr)
}
