package config

import (
	"os"
	"path/filepath"
)

// DefaultWorkspace is the working copy location when none is configured
const DefaultWorkspace = "~/Code"

// GetTicketHome returns TICKET_HOME or ~/.ticket default
func GetTicketHome() string {
	ticketHome := os.Getenv("TICKET_HOME")
	if ticketHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".ticket"
		}
		return filepath.Join(homeDir, ".ticket")
	}
	return ExpandPath(ticketHome)
}

// GetDBPath returns $TICKET_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetTicketHome(), "state.db")
}

// GetSettingsPath returns $TICKET_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetTicketHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
