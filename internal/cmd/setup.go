package cmd

import (
	"context"
	"fmt"

	"ticket/internal/config"
	"ticket/internal/logging"
	"ticket/internal/services"
	"ticket/internal/theme"
)

// SetupCmd creates the workspace from its upstream
type SetupCmd struct {
	Force    bool   `help:"Replace an existing workspace backup" short:"f"`
	Save     bool   `help:"Remember the upstream in settings.json"`
	Upstream string `arg:"" optional:"" help:"Clone URL (defaults to \"upstream\" in settings.json)"`
}

// Run executes the setup command
func (s *SetupCmd) Run(cli *CLI) error {
	upstream := s.Upstream
	if upstream == "" && cli.settings != nil {
		upstream = cli.settings.Upstream
	}

	logging.Logger.Info("Executing setup command", "upstream", upstream, "workspace", cli.Container.Workspace, "force", s.Force)

	result, err := cli.Container.SetupService.Setup(context.Background(), services.SetupOptions{
		Force:     s.Force,
		Upstream:  upstream,
		Workspace: cli.Container.Workspace,
	})
	if err != nil {
		return err
	}

	if result.BackupPath != "" {
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("Previous workspace moved to"), result.BackupPath)
	}
	fmt.Printf("%s %s\n", theme.SuccessStyle.Render("Workspace ready at"), result.Workspace)

	if s.Save && s.Upstream != "" {
		settings := cli.settings
		if settings == nil {
			settings = &config.Settings{}
		}
		settings.Upstream = s.Upstream
		if err := config.SaveSettings(settings); err != nil {
			return err
		}
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("Upstream saved to"), config.GetSettingsPath())
	}

	return nil
}
