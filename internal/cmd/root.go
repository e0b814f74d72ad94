package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"ticket/internal/config"
	"ticket/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"200"`
	SessionHost string           `help:"Terminal multiplexer hosting ticket sessions" default:"tmux" enum:"tmux,screen" env:"TICKET_SESSION_HOST"`
	Sync        string           `help:"How trunk is updated from upstream: svn (git svn rebase), pull (git pull --rebase) or none" default:"svn" enum:"svn,pull,none" env:"TICKET_SYNC"`
	Trunk       string           `help:"Trunk branch name" default:"master" env:"TICKET_TRUNK"`
	Workspace   string           `help:"Working copy managed by ticket" default:"~/Code" env:"TICKET_WORKSPACE"`

	Start    StartCmd    `cmd:"start" help:"Park the active ticket and switch to a ticket, then attach its session"`
	Resume   ResumeCmd   `cmd:"resume" help:"Attach the session of the ticket that is checked out"`
	Stop     StopCmd     `cmd:"stop" help:"Stash the active ticket's changes and return to an up to date trunk"`
	Kill     KillCmd     `cmd:"kill" help:"Delete a ticket's branch, stashes and session"`
	List     ListCmd     `cmd:"list" aliases:"ls" help:"List tickets by state (active, open, blocked)"`
	Block    BlockCmd    `cmd:"block" help:"Mark a ticket as blocked"`
	Unblock  UnblockCmd  `cmd:"unblock" help:"Mark a blocked ticket as open again"`
	Setup    SetupCmd    `cmd:"setup" help:"Clone the upstream into the workspace, backing up the existing one"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings file location and available options"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles && !hasEnv("TICKET_MAX_LOG_FILES") && c.settings.MaxLogFiles != nil {
			c.MaxLogFiles = *c.settings.MaxLogFiles
		}
		if !c.Debug && !hasEnv("TICKET_DEBUG") && c.settings.Debug != nil && *c.settings.Debug {
			c.Debug = true
		}
		applySetting(&c.SessionHost, config.DefaultSessionHost, "TICKET_SESSION_HOST", c.settings.SessionHost)
		applySetting(&c.Sync, config.DefaultSync, "TICKET_SYNC", c.settings.Sync)
		applySetting(&c.Trunk, config.DefaultTrunk, "TICKET_TRUNK", c.settings.Trunk)
		applySetting(&c.Workspace, config.DefaultWorkspace, "TICKET_WORKSPACE", c.settings.Workspace)
	}
	c.Workspace = config.ExpandPath(c.Workspace)

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Sessions started from here inherit the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TICKET_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TICKET_DEBUG_FILE", logFilePath)
		}
	}

	logging.Logger.Debug("Configuration resolved",
		"session_host", c.SessionHost,
		"sync", c.Sync,
		"trunk", c.Trunk,
		"workspace", c.Workspace,
	)

	// Create container AFTER logging is initialized so GORM logs go to the right place
	container, err := NewContainer(ContainerOptions{
		DBPath:      config.GetDBPath(),
		SessionHost: c.SessionHost,
		Sync:        c.Sync,
		Trunk:       c.Trunk,
		Workspace:   c.Workspace,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// applySetting replaces a flag still at its default with the settings.json
// value, unless the environment already set it
func applySetting(flag *string, defaultValue, envName, setting string) {
	if *flag != defaultValue || hasEnv(envName) || setting == "" {
		return
	}
	*flag = setting
}

func hasEnv(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}
