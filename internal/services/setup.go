package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ticket/internal/logging"
	"ticket/internal/ports"
)

// ErrBackupExists is returned by Setup when a previous backup is in the way
var ErrBackupExists = errors.New("workspace backup already exists")

// SetupService creates the workspace from its upstream
type SetupService struct {
	cloner ports.RepositoryCloner
}

// NewSetupService creates a new SetupService
func NewSetupService(cloner ports.RepositoryCloner) *SetupService {
	return &SetupService{cloner: cloner}
}

// SetupResult describes what Setup did
type SetupResult struct {
	// BackupPath is where the previous workspace was moved, "" if there was none
	BackupPath string
	Workspace  string
}

// Setup clones the upstream next to the workspace and swaps it into place.
// An existing workspace is renamed to "<workspace>.bak". Nothing is moved
// until the clone succeeded.
func (s *SetupService) Setup(ctx context.Context, opts SetupOptions) (*SetupResult, error) {
	if opts.Upstream == "" {
		return nil, errors.New("no upstream configured: pass one or set \"upstream\" in settings.json")
	}
	if opts.Workspace == "" {
		return nil, errors.New("no workspace configured")
	}

	workspace, err := filepath.Abs(opts.Workspace)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace path: %w", err)
	}
	backup := workspace + ".bak"

	workspaceExists, err := pathExists(workspace)
	if err != nil {
		return nil, err
	}
	if workspaceExists {
		if err := s.checkBackup(backup, opts.Force); err != nil {
			return nil, err
		}
	}

	parent := filepath.Dir(workspace)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", parent, err)
	}

	staging, err := os.MkdirTemp(parent, "."+filepath.Base(workspace)+"-setup-")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(staging); err != nil {
			logging.Logger.Warn("Failed to remove staging directory", "path", staging, "error", err)
		}
	}()

	clone := filepath.Join(staging, filepath.Base(workspace))
	if err := s.cloner.Clone(ctx, opts.Upstream, clone); err != nil {
		return nil, err
	}

	result := &SetupResult{Workspace: workspace}

	if workspaceExists {
		if opts.Force {
			if err := os.RemoveAll(backup); err != nil {
				return nil, fmt.Errorf("failed to remove old backup %s: %w", backup, err)
			}
		}
		logging.Logger.Info("Backing up workspace", "from", workspace, "to", backup)
		if err := os.Rename(workspace, backup); err != nil {
			return nil, fmt.Errorf("failed to back up workspace: %w", err)
		}
		result.BackupPath = backup
	}

	if err := os.Rename(clone, workspace); err != nil {
		return nil, fmt.Errorf("failed to move clone into %s: %w", workspace, err)
	}

	logging.Logger.Info("Workspace ready", "workspace", workspace, "upstream", opts.Upstream)
	return result, nil
}

func (s *SetupService) checkBackup(backup string, force bool) error {
	exists, err := pathExists(backup)
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("%w: %s (use --force to replace it)", ErrBackupExists, backup)
	}
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}
