package cmd

import (
	"context"
	"fmt"

	"ticket/internal/logging"
	"ticket/internal/theme"
)

// StopCmd parks the active ticket
type StopCmd struct{}

// Run executes the stop command
func (s *StopCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing stop command")

	ctx := context.Background()
	active, wasActive, err := cli.Container.LifecycleService.ActiveTicket(ctx)
	if err != nil {
		return err
	}

	if err := cli.Container.LifecycleService.Stop(ctx); err != nil {
		return err
	}

	if wasActive {
		fmt.Printf("%s %s, %s is up to date\n",
			theme.SuccessStyle.Render("Parked"),
			theme.BranchStyle.Render(active.BranchName()),
			cli.Container.Trunk)
		return nil
	}
	fmt.Printf("%s is up to date\n", cli.Container.Trunk)
	return nil
}
