package process

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"ticket/internal/domain"
	"ticket/internal/logging"
)

// Exec replaces the current process with cmd, keeping the terminal.
// envDrop names environment variables removed before the hand-over.
// It returns only when the replacement could not happen.
func Exec(cmd domain.Command, argv0 string, envDrop ...string) error {
	path, err := exec.LookPath(cmd.Name)
	if err != nil {
		return fmt.Errorf("failed to find %s: %w", cmd.Name, err)
	}

	if argv0 == "" {
		argv0 = cmd.Name
	}
	argv := append([]string{argv0}, cmd.Args...)
	env := FilterEnv(os.Environ(), envDrop...)

	if cmd.Dir != "" {
		if err := os.Chdir(cmd.Dir); err != nil {
			return fmt.Errorf("failed to change directory to %s: %w", cmd.Dir, err)
		}
	}

	logging.Logger.Info("Handing over to session host", "path", path, "command", cmd.String())
	return execve(path, argv, env)
}

// FilterEnv returns env without the named variables
func FilterEnv(env []string, drop ...string) []string {
	if len(drop) == 0 {
		return env
	}

	filtered := make([]string, 0, len(env))
	for _, kv := range env {
		name, _, _ := strings.Cut(kv, "=")
		keep := true
		for _, d := range drop {
			if name == d {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, kv)
		}
	}
	return filtered
}
