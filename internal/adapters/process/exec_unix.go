//go:build unix

package process

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func execve(path string, argv, env []string) error {
	if err := unix.Exec(path, argv, env); err != nil {
		return fmt.Errorf("failed to exec %s: %w", path, err)
	}
	return nil
}
