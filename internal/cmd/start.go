package cmd

import (
	"context"

	"ticket/internal/domain"
	"ticket/internal/logging"
)

// StartCmd switches the working copy to a ticket and attaches its session
type StartCmd struct {
	ID string `arg:"" help:"Ticket number"`
}

// Run executes the start command. On success the process is replaced by the
// session host and Run never returns.
func (s *StartCmd) Run(cli *CLI) error {
	id, err := domain.ParseTicketID(s.ID)
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing start command", "ticket", id.BranchName())

	attachment, err := cli.Container.LifecycleService.Start(context.Background(), id)
	if err != nil {
		return err
	}

	return attach(cli, attachment)
}

// ResumeCmd reattaches the session of the ticket that is checked out
type ResumeCmd struct{}

// Run executes the resume command
func (r *ResumeCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing resume command")

	attachment, err := cli.Container.LifecycleService.Resume(context.Background())
	if err != nil {
		return err
	}

	return attach(cli, attachment)
}

// attach hands the terminal over to the session host
func attach(cli *CLI, attachment *domain.Attachment) error {
	// The journal must not stay open in the session host's process
	if err := cli.Close(); err != nil {
		logging.Logger.Warn("Failed to close resources before attaching", "error", err)
	}

	logging.Logger.Info("Attaching session", "session", attachment.Session, "create", attachment.Create)
	return cli.Container.SessionHost.Exec(*attachment)
}
