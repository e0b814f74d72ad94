//go:build !unix

package process

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// execve emulates process replacement by running the command in the
// foreground and exiting with its status.
func execve(path string, argv, env []string) error {
	cmd := exec.Command(path, argv[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		os.Exit(0)
	case errors.As(err, &exitErr):
		os.Exit(exitErr.ExitCode())
	}
	return fmt.Errorf("failed to run %s: %w", path, err)
}
