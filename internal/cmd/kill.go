package cmd

import (
	"context"
	"fmt"

	"ticket/internal/domain"
	"ticket/internal/logging"
	"ticket/internal/services"
	"ticket/internal/theme"
)

// KillCmd removes a ticket's branch, stashes and session
type KillCmd struct {
	ID  string `arg:"" help:"Ticket number"`
	Yes bool   `help:"Skip the confirmation prompt" short:"y"`
}

// Run executes the kill command
func (k *KillCmd) Run(cli *CLI) error {
	id, err := domain.ParseTicketID(k.ID)
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing kill command", "ticket", id.BranchName(), "yes", k.Yes)

	if !k.Yes {
		confirmed, err := cli.Container.Confirmer.Confirm(
			fmt.Sprintf("Kill %s?", id.BranchName()),
			"Deletes the branch, every stash taken on it and its session. Uncommitted work on it is lost.",
		)
		if err != nil {
			return err
		}
		if !confirmed {
			logging.Logger.Info("User cancelled kill", "ticket", id.BranchName())
			fmt.Println("Cancelled")
			return nil
		}
	}

	result, err := cli.Container.LifecycleService.Kill(context.Background(), id)
	if err != nil {
		return err
	}

	printKillResult(result)
	return nil
}

func printKillResult(result *services.KillResult) {
	fmt.Printf("%s %s\n", theme.SuccessStyle.Render("Killed"), theme.BranchStyle.Render(result.Ticket.BranchName()))
	fmt.Printf("  %s %d\n", theme.LabelStyle.Render("stashes dropped:"), result.DroppedStashes)
	if result.SessionKilled {
		fmt.Printf("  %s %s\n", theme.LabelStyle.Render("session closed:"), result.Ticket.SessionName())
	}
}
