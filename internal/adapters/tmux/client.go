package tmux

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ticket/internal/adapters/process"
	"ticket/internal/domain"
	"ticket/internal/logging"
	"ticket/internal/ports"
)

// Client is the tmux implementation of ports.SessionHost
type Client struct {
	runner ports.CommandRunner
}

// Compile-time interface verification
var _ ports.SessionHost = (*Client)(nil)

// NewClient creates a new Client
func NewClient(runner ports.CommandRunner) *Client {
	return &Client{runner: runner}
}

// exactTarget makes tmux match the session name exactly instead of by prefix
// or pattern, so "#1" never resolves to "#12"
func exactTarget(name string) string {
	return "=" + name
}

// ListSessions returns the names of running sessions
func (c *Client) ListSessions(ctx context.Context) ([]string, error) {
	// Exit code 1 means no server is running, i.e. no sessions
	cmd := domain.NewCommand("tmux", "list-sessions", "-F", "#{session_name}").AllowExitCodes(1)
	result, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		logging.Logger.Debug("No tmux server running")
		return nil, nil
	}

	var sessions []string
	for _, line := range strings.Split(result.Output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			sessions = append(sessions, line)
		}
	}
	return sessions, nil
}

// KillSession terminates the tmux session
func (c *Client) KillSession(ctx context.Context, name string) error {
	cmd := domain.NewCommand("tmux", "kill-session", "-t", exactTarget(name)).AllowExitCodes(1)
	result, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		logging.Logger.Debug("tmux session not running", "name", name, "output", result.Output)
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, name)
	}
	logging.Logger.Info("Killed tmux session", "name", name)
	return nil
}

// AttachCommand returns the command that attaches to the session.
// new-session -A attaches when the session exists and creates it otherwise.
func (c *Client) AttachCommand(attachment domain.Attachment) domain.Command {
	if attachment.Create {
		return domain.NewCommand("tmux", "new-session", "-A", "-s", attachment.Session)
	}
	return domain.NewCommand("tmux", "attach-session", "-t", exactTarget(attachment.Session))
}

// Exec replaces the current process with tmux attached to the session.
// TMUX and TMUX_PANE are dropped so this works from inside another tmux client.
func (c *Client) Exec(attachment domain.Attachment) error {
	if attachment.Session == "" {
		return errors.New("no session to attach to")
	}
	return process.Exec(c.AttachCommand(attachment), "", "TMUX", "TMUX_PANE")
}
