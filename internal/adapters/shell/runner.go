package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"ticket/internal/domain"
	"ticket/internal/logging"
	"ticket/internal/ports"
)

// Runner runs commands with os/exec, capturing stdout and stderr together
type Runner struct {
	dir string
	env []string
}

// Compile-time interface verification
var _ ports.CommandRunner = (*Runner)(nil)

// NewRunner creates a Runner whose commands default to dir ("" = current directory)
func NewRunner(dir string) *Runner {
	return &Runner{dir: dir}
}

// WithEnv returns a Runner that appends env to the inherited environment
func (r *Runner) WithEnv(env ...string) *Runner {
	return &Runner{dir: r.dir, env: append(append([]string{}, r.env...), env...)}
}

// Run executes cmd and waits for it to finish
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = r.dir
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	if len(r.env) > 0 {
		c.Env = append(c.Environ(), r.env...)
	}

	var output bytes.Buffer
	c.Stdout = &output
	c.Stderr = &output

	start := time.Now()
	err := c.Run()
	result := domain.CommandResult{Output: output.String()}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			logging.Logger.Error("Command could not be started", "command", cmd.String(), "error", err)
			return result, fmt.Errorf("failed to run %s: %w", cmd.Name, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	logging.Logger.Debug("Command finished",
		"command", cmd.String(),
		"dir", c.Dir,
		"exit_code", result.ExitCode,
		"duration", time.Since(start))

	if !cmd.Accepts(result.ExitCode) {
		return result, &domain.CommandError{
			Command:  cmd.String(),
			ExitCode: result.ExitCode,
			Output:   result.Output,
		}
	}
	return result, nil
}
