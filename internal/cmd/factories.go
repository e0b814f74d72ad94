package cmd

import (
	"fmt"

	adaptergit "ticket/internal/adapters/git"
	adapterprompt "ticket/internal/adapters/prompt"
	adapterscreen "ticket/internal/adapters/screen"
	adaptershell "ticket/internal/adapters/shell"
	adapterstorage "ticket/internal/adapters/storage"
	adaptertmux "ticket/internal/adapters/tmux"
	"ticket/internal/logging"
	"ticket/internal/ports"
	"ticket/internal/services"
)

// ContainerOptions holds the resolved configuration the container is wired from
type ContainerOptions struct {
	DBPath      string
	SessionHost string
	Sync        string
	Trunk       string
	Workspace   string
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	LifecycleService    *services.LifecycleService
	ListService         *services.ListService
	SetupService        *services.SetupService
	TicketStatusService *services.TicketStatusService

	// Adapters used directly by commands
	Confirmer   ports.Confirmer
	SessionHost ports.SessionHost

	Trunk     string
	Workspace string

	// Internal - for cleanup only
	journal ports.TicketRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	sync, err := adaptergit.ParseSyncStrategy(opts.Sync)
	if err != nil {
		return nil, err
	}

	// Every git and session command acts on the workspace, wherever ticket runs from
	runner := adaptershell.NewRunner(opts.Workspace)

	sessionHost, err := newSessionHost(opts.SessionHost, runner)
	if err != nil {
		return nil, err
	}

	gitRepo := adaptergit.NewCLIRepository(runner, opts.Trunk, sync)

	// The journal is advisory: ticket keeps working without it
	var journal ports.TicketRepository
	if repo, err := adapterstorage.NewSQLiteRepository(opts.DBPath); err != nil {
		logging.Logger.Warn("Ticket journal unavailable", "path", opts.DBPath, "error", err)
	} else {
		journal = repo
	}

	// Typed nils must not leak into the services' nil checks
	var recorder ports.TicketRecorder
	var reader ports.TicketReader
	if journal != nil {
		recorder = journal
		reader = journal
	}

	return &Container{
		LifecycleService: services.NewLifecycleService(gitRepo, sessionHost, recorder, services.LifecycleOptions{
			Trunk:     opts.Trunk,
			Workspace: opts.Workspace,
		}),
		ListService:         services.NewListService(gitRepo, sessionHost, reader),
		SetupService:        services.NewSetupService(gitRepo),
		TicketStatusService: services.NewTicketStatusService(journal),
		Confirmer:           adapterprompt.NewHuhConfirmer(),
		SessionHost:         sessionHost,
		Trunk:               opts.Trunk,
		Workspace:           opts.Workspace,
		journal:             journal,
	}, nil
}

// newSessionHost selects the session host adapter by name
func newSessionHost(name string, runner ports.CommandRunner) (ports.SessionHost, error) {
	switch name {
	case "tmux":
		return adaptertmux.NewClient(runner), nil
	case "screen":
		return adapterscreen.NewClient(runner), nil
	}
	return nil, fmt.Errorf("unknown session host %q (valid: tmux, screen)", name)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.journal == nil {
		return nil
	}
	err := c.journal.Close()
	c.journal = nil
	return err
}
