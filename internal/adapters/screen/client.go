package screen

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

// processName is how the attached screen shows up in ps
const processName = "screen (ticket)"

// Client is the GNU screen implementation of ports.SessionHost
type Client struct {
	runner ports.CommandRunner
}

// Compile-time interface verification
var _ ports.SessionHost = (*Client)(nil)

// NewClient creates a new Client
func NewClient(runner ports.CommandRunner) *Client {
	return &Client{runner: runner}
}

// ListSessions returns the names of running sessions.
// screen -ls exits 1 both with and without sessions on most builds.
func (c *Client) ListSessions(ctx context.Context) ([]string, error) {
	result, err := c.runner.Run(ctx, domain.NewCommand("screen", "-ls").AllowExitCodes(1))
	if err != nil {
		return nil, err
	}
	return ParseSessionList(result.Output), nil
}

// ParseSessionList extracts session names from `screen -ls` output.
// Lines look like "\t12345.#7\t(Detached)".
func ParseSessionList(output string) []string {
	var sessions []string
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "\t") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		_, name, ok := strings.Cut(fields[0], ".")
		if !ok || name == "" {
			continue
		}
		sessions = append(sessions, name)
	}
	return sessions
}

// KillSession terminates the screen session
func (c *Client) KillSession(ctx context.Context, name string) error {
	cmd := domain.NewCommand("screen", "-S", name, "-X", "quit").AllowExitCodes(1)
	result, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		logging.Logger.Debug("screen session not running", "name", name, "output", result.Output)
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, name)
	}
	logging.Logger.Info("Killed screen session", "name", name)
	return nil
}

// AttachCommand returns the command that attaches to the session.
// -DRR detaches it elsewhere, reattaches, and creates it when missing.
func (c *Client) AttachCommand(attachment domain.Attachment) domain.Command {
	if attachment.Create {
		return domain.NewCommand("screen", "-DRR", attachment.Session)
	}
	return domain.NewCommand("screen", "-r", attachment.Session)
}

// Exec replaces the current process with screen attached to the session
func (c *Client) Exec(attachment domain.Attachment) error {
	if attachment.Session == "" {
		return errors.New("no session to attach to")
	}
	return process.Exec(c.AttachCommand(attachment), processName, "STY")
}
