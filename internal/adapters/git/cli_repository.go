package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"ticket/internal/domain"
	"ticket/internal/logging"
	"ticket/internal/ports"
)

// CLIRepository implements ports.VersionControl by running the git CLI
// through a ports.CommandRunner
type CLIRepository struct {
	runner ports.CommandRunner
	sync   SyncStrategy
	trunk  string
}

// Verify interface compliance at compile time
var (
	_ ports.RepositoryCloner = (*CLIRepository)(nil)
	_ ports.VersionControl   = (*CLIRepository)(nil)
)

// NewCLIRepository creates a CLIRepository. The runner decides which working
// copy the commands act on.
func NewCLIRepository(runner ports.CommandRunner, trunk string, sync SyncStrategy) *CLIRepository {
	return &CLIRepository{
		runner: runner,
		sync:   sync,
		trunk:  trunk,
	}
}

func (r *CLIRepository) git(ctx context.Context, args ...string) (domain.CommandResult, error) {
	return r.runner.Run(ctx, domain.NewCommand("git", args...))
}

// BranchReader methods

// BranchExists implements BranchReader.BranchExists
func (r *CLIRepository) BranchExists(ctx context.Context, branch string) (bool, error) {
	cmd := domain.NewCommand("git", "rev-parse", "--verify", "--quiet", "refs/heads/"+branch).AllowExitCodes(1)
	result, err := r.runner.Run(ctx, cmd)
	if err != nil {
		return false, err
	}
	return result.ExitCode == 0, nil
}

// CurrentBranch implements BranchReader.CurrentBranch.
// Returns "" when HEAD is detached.
func (r *CLIRepository) CurrentBranch(ctx context.Context) (string, error) {
	cmd := domain.NewCommand("git", "symbolic-ref", "--quiet", "--short", "HEAD").AllowExitCodes(1)
	result, err := r.runner.Run(ctx, cmd)
	if err != nil {
		return "", err
	}
	if result.ExitCode != 0 {
		logging.Logger.Warn("HEAD is detached")
		return "", nil
	}
	return strings.TrimSpace(result.Output), nil
}

// ListBranches implements BranchReader.ListBranches
func (r *CLIRepository) ListBranches(ctx context.Context, pattern string) ([]string, error) {
	result, err := r.git(ctx, "branch", "--list", "--format=%(refname:short)", pattern)
	if err != nil {
		return nil, err
	}

	var branches []string
	for _, line := range strings.Split(result.Output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			branches = append(branches, line)
		}
	}
	return branches, nil
}

// BranchWriter methods

// Checkout implements BranchWriter.Checkout
func (r *CLIRepository) Checkout(ctx context.Context, branch string) error {
	_, err := r.git(ctx, "checkout", branch, "--")
	return err
}

// CreateBranch implements BranchWriter.CreateBranch
func (r *CLIRepository) CreateBranch(ctx context.Context, branch, startPoint string) error {
	_, err := r.git(ctx, "checkout", "-b", branch, startPoint, "--")
	return err
}

// ForceDeleteBranch implements BranchWriter.ForceDeleteBranch
func (r *CLIRepository) ForceDeleteBranch(ctx context.Context, branch string) error {
	_, err := r.git(ctx, "branch", "-D", branch)
	return err
}

// WorkingCopy methods

// StageAll implements WorkingCopy.StageAll, including untracked files
func (r *CLIRepository) StageAll(ctx context.Context) error {
	_, err := r.git(ctx, "add", "-A")
	return err
}

// UnstageAll implements WorkingCopy.UnstageAll, keeping the changes in the working tree
func (r *CLIRepository) UnstageAll(ctx context.Context) error {
	_, err := r.git(ctx, "reset", "--quiet")
	return err
}

// StashReader methods

// ListStashes implements StashReader.ListStashes, newest first
func (r *CLIRepository) ListStashes(ctx context.Context) ([]domain.Stash, error) {
	result, err := r.git(ctx, "stash", "list", "--format="+stashListFormat)
	if err != nil {
		return nil, err
	}
	return ParseStashList(result.Output)
}

// StashWriter methods

// PushStash implements StashWriter.PushStash
func (r *CLIRepository) PushStash(ctx context.Context) error {
	result, err := r.git(ctx, "stash", "push")
	if err != nil {
		return err
	}
	if strings.Contains(result.Output, "No local changes to save") {
		logging.Logger.Debug("Nothing to stash")
	}
	return nil
}

// PopStash implements StashWriter.PopStash.
// On conflict git keeps the entry and the error carries its output.
func (r *CLIRepository) PopStash(ctx context.Context, ref string) error {
	_, err := r.git(ctx, "stash", "pop", ref)
	return err
}

// DropStash implements StashWriter.DropStash
func (r *CLIRepository) DropStash(ctx context.Context, ref string) error {
	_, err := r.git(ctx, "stash", "drop", ref)
	return err
}

// TrunkSyncer methods

// SyncTrunk implements TrunkSyncer.SyncTrunk
func (r *CLIRepository) SyncTrunk(ctx context.Context) error {
	args, err := r.sync.args()
	if err != nil {
		return err
	}
	if args == nil {
		logging.Logger.Debug("Trunk sync disabled")
		return nil
	}

	logging.Logger.Info("Syncing trunk", "trunk", r.trunk, "strategy", string(r.sync))
	if _, err := r.git(ctx, args...); err != nil {
		return fmt.Errorf("failed to sync %s: %w", r.trunk, err)
	}
	return nil
}

// RepositoryCloner methods

// Clone implements RepositoryCloner.Clone. The clone runs from dir's parent
// so it does not depend on the runner's working copy.
func (r *CLIRepository) Clone(ctx context.Context, url, dir string) error {
	cmd := domain.NewCommand("git", r.sync.CloneArgs(url, dir)...)
	cmd.Dir = filepath.Dir(dir)

	logging.Logger.Info("Cloning upstream", "url", url, "dir", dir, "strategy", string(r.sync))
	if _, err := r.runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return nil
}
