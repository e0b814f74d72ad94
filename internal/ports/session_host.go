package ports

import (
	"context"

	"ticket/internal/domain"
)

// SessionLister lists running sessions
type SessionLister interface {
	ListSessions(ctx context.Context) ([]string, error)
}

// SessionKiller terminates sessions
type SessionKiller interface {
	// KillSession terminates the named session. Returns
	// domain.ErrSessionNotFound when no such session is running.
	KillSession(ctx context.Context, name string) error
}

// SessionAttacher replaces the current process with the session host
type SessionAttacher interface {
	// AttachCommand returns the command that attaches to (and, when allowed,
	// creates) the session.
	AttachCommand(attachment domain.Attachment) domain.Command
	// Exec runs the attach command in place of the current process.
	// It only returns on failure.
	Exec(attachment domain.Attachment) error
}

// SessionHost is the composite interface
type SessionHost interface {
	SessionAttacher
	SessionKiller
	SessionLister
}
