package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// upToDateMarker is the literal phrase git prints for a no-op pull. The
// match is fragile across git versions and locales; misses degrade to
// Success rather than guessing harder.
const upToDateMarker = "Already up to date."

// updater runs the fixed two-step update procedure for one repository.
type updater struct {
	runner  gitRunner
	timeout time.Duration
}

// update pulls repo and recursively syncs its submodules, classifying the
// outcome. No command is run at all when repo is not a git repository, and
// the submodule sync never starts when the pull times out or cannot run.
func (u updater) update(repo string) UpdateResult {
	if !isRepo(repo) {
		return UpdateResult{Repo: repo, Status: StatusNotARepo}
	}

	pull, err := u.runner.Run(repo, u.timeout, "pull")
	if err != nil {
		status, detail := classifyRunError(err)
		return UpdateResult{Repo: repo, Status: status, Detail: detail}
	}

	sub, err := u.runner.Run(repo, u.timeout, "submodule", "update", "--init", "--recursive")
	if err != nil {
		status, detail := classifyRunError(err)
		return UpdateResult{Repo: repo, Status: status, Detail: detail}
	}

	detail := "--- git pull ---\n" + strings.TrimSpace(pull.output)
	if s := strings.TrimSpace(sub.output); s != "" {
		detail += "\n--- submodules ---\n" + s
	}

	if pull.exitCode != 0 || sub.exitCode != 0 {
		return UpdateResult{Repo: repo, Status: StatusFailed, Detail: detail}
	}
	if strings.Contains(pull.output, upToDateMarker) && strings.TrimSpace(sub.output) == "" {
		// Empty detail tells the reporter to stay silent.
		return UpdateResult{Repo: repo, Status: StatusUpToDate}
	}
	return UpdateResult{Repo: repo, Status: StatusSuccess, Detail: detail}
}

func classifyRunError(err error) (Status, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return StatusTimeout, fmt.Sprintf("Command timed out: %v", err)
	}
	return StatusError, fmt.Sprintf("An unexpected error occurred: %v", err)
}
