package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyWaitSuccessAtDeadlineIsNotTimeout(t *testing.T) {
	// A command that finished cleanly just as the deadline expired ran to
	// completion; only a killed child is a timeout.
	out, err := classifyWait(context.DeadlineExceeded, nil, "Already up to date.\n", []string{"pull"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.exitCode)
	assert.Equal(t, "Already up to date.\n", out.output)
}

func TestClassifyWaitKilledAtDeadlineIsTimeout(t *testing.T) {
	_, err := classifyWait(context.DeadlineExceeded, errors.New("signal: killed"), "", []string{"pull"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "git pull")
}

func TestClassifyWaitCleanFinish(t *testing.T) {
	out, err := classifyWait(nil, nil, "done\n", []string{"pull"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.exitCode)
	assert.Equal(t, "done\n", out.output)
}

func TestClassifyWaitOtherErrorIsNotTimeout(t *testing.T) {
	_, err := classifyWait(nil, errors.New("waitid: no child processes"), "", []string{"pull"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
}
