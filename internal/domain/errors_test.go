package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandError_Error(t *testing.T) {
	err := &CommandError{
		Command:  "git stash pop stash@{0}",
		ExitCode: 1,
		Output:   "CONFLICT (content): Merge conflict in a.txt\n",
	}

	assert.Equal(t,
		"command 'git stash pop stash@{0}' exited with non-zero exit code 1\noutput:\nCONFLICT (content): Merge conflict in a.txt",
		err.Error())
}

func TestCommandError_ErrorWithoutOutput(t *testing.T) {
	err := &CommandError{Command: "false", ExitCode: 1}
	assert.Equal(t, "command 'false' exited with non-zero exit code 1", err.Error())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, 0},
		{"not in workspace", fmt.Errorf("start: %w", ErrNotInWorkspace), ExitNotInWorkspace},
		{"no active ticket", ErrNoActiveTicket, ExitNoActiveTicket},
		{"command error", fmt.Errorf("stop: %w", &CommandError{Command: "git stash", ExitCode: 128}), 128},
		{"generic", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

func TestExitCode_PreconditionsAreDistinct(t *testing.T) {
	assert.NotEqual(t, ExitCode(ErrNotInWorkspace), ExitCode(ErrNoActiveTicket))
	assert.NotEqual(t, ExitFailure, ExitCode(ErrNotInWorkspace))
	assert.NotEqual(t, ExitFailure, ExitCode(ErrNoActiveTicket))
}

func TestCommand_Accepts(t *testing.T) {
	cmd := NewCommand("git", "stash")
	assert.True(t, cmd.Accepts(0))
	assert.False(t, cmd.Accepts(1))

	tolerant := cmd.AllowExitCodes(1)
	assert.True(t, tolerant.Accepts(0))
	assert.True(t, tolerant.Accepts(1))
	assert.False(t, tolerant.Accepts(2))
	assert.Empty(t, cmd.ExpectedCodes, "original command must not change")
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "git checkout '#7'", NewCommand("git", "checkout", "#7").String())
	assert.Equal(t, "git stash drop 'stash@{1}'", NewCommand("git", "stash", "drop", "stash@{1}").String())
	assert.Equal(t, "tmux kill-session -t '=#7'", NewCommand("tmux", "kill-session", "-t", "=#7").String())
}
