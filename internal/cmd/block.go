package cmd

import (
	"context"
	"fmt"

	"ticket/internal/domain"
	"ticket/internal/logging"
	"ticket/internal/theme"
)

// BlockCmd marks a ticket as blocked
type BlockCmd struct {
	ID     string `arg:"" help:"Ticket number"`
	Reason string `help:"Why the ticket is blocked" short:"r"`
}

// Run executes the block command
func (b *BlockCmd) Run(cli *CLI) error {
	id, err := domain.ParseTicketID(b.ID)
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing block command", "ticket", id.BranchName())

	if err := cli.Container.TicketStatusService.Block(context.Background(), id, b.Reason); err != nil {
		return err
	}

	fmt.Printf("%s is blocked\n", theme.BranchStyle.Render(id.BranchName()))
	return nil
}

// UnblockCmd marks a blocked ticket as open again
type UnblockCmd struct {
	ID string `arg:"" help:"Ticket number"`
}

// Run executes the unblock command
func (u *UnblockCmd) Run(cli *CLI) error {
	id, err := domain.ParseTicketID(u.ID)
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing unblock command", "ticket", id.BranchName())

	if err := cli.Container.TicketStatusService.Unblock(context.Background(), id); err != nil {
		return err
	}

	fmt.Printf("%s is open\n", theme.BranchStyle.Render(id.BranchName()))
	return nil
}
