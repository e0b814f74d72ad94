package ports

import (
	"context"

	"ticket/internal/domain"
)

// CommandRunner executes external commands.
//
// Run returns a *domain.CommandError when the command exits with a code the
// command does not accept, and a plain error when it cannot be started at all.
type CommandRunner interface {
	Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}
