package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidTicketID = errors.New("ticket ID must be a positive integer")
	ErrNoActiveTicket  = errors.New("no active ticket: trunk is checked out")
	ErrNotInWorkspace  = errors.New("not in the managed workspace")
	ErrSessionNotFound = errors.New("session not found")
	ErrTicketNotFound  = errors.New("ticket not found")
)

// Process exit codes for the precondition failures. Command failures exit
// with the failing command's own code.
const (
	ExitFailure        = 1
	ExitNoActiveTicket = 2
	ExitNotInWorkspace = 3
)

// CommandError reports an external command that exited with an unexpected code
type CommandError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *CommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "command '%s' exited with non-zero exit code %d", e.Command, e.ExitCode)
	if out := strings.TrimRight(e.Output, "\n"); out != "" {
		b.WriteString("\noutput:\n")
		b.WriteString(out)
	}
	return b.String()
}

// ExitCode maps an error returned by a CLI command to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	switch {
	case errors.Is(err, ErrNotInWorkspace):
		return ExitNotInWorkspace
	case errors.Is(err, ErrNoActiveTicket):
		return ExitNoActiveTicket
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}

	return ExitFailure
}
