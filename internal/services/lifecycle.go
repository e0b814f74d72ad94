package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ticket/internal/domain"
	"ticket/internal/logging"
	"ticket/internal/ports"
)

// LifecycleService moves tickets between parked and active.
//
// The active ticket is never tracked here: it is whatever ticket branch the
// working copy has checked out. Each operation issues its commands one at a
// time and stops at the first failure, leaving the working copy wherever it
// got to.
type LifecycleService struct {
	getwd     func() (string, error)
	journal   ports.TicketRecorder
	locator   *StashLocator
	sessions  ports.SessionKiller
	trunk     string
	vcs       ports.VersionControl
	workspace string
}

// NewLifecycleService creates a new LifecycleService. journal may be nil.
func NewLifecycleService(
	vcs ports.VersionControl,
	sessions ports.SessionKiller,
	journal ports.TicketRecorder,
	opts LifecycleOptions,
) *LifecycleService {
	getwd := opts.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	return &LifecycleService{
		getwd:     getwd,
		journal:   journal,
		locator:   NewStashLocator(vcs),
		sessions:  sessions,
		trunk:     opts.Trunk,
		vcs:       vcs,
		workspace: opts.Workspace,
	}
}

// Locator returns the stash locator used by the service
func (s *LifecycleService) Locator() *StashLocator {
	return s.locator
}

// ActiveTicket returns the ticket whose branch is checked out.
// ok is false on trunk, on a detached HEAD and on non-ticket branches.
func (s *LifecycleService) ActiveTicket(ctx context.Context) (id domain.TicketID, ok bool, err error) {
	branch, err := s.vcs.CurrentBranch(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("failed to read current branch: %w", err)
	}
	id, ok = domain.ParseBranchName(branch)
	return id, ok, nil
}

// Start parks whatever is active, checks out the ticket's branch, restores its
// newest stash and returns the session to attach to.
func (s *LifecycleService) Start(ctx context.Context, id domain.TicketID) (*domain.Attachment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkWorkspace(); err != nil {
		return nil, err
	}

	logging.Logger.Info("Starting ticket", "ticket", id.BranchName())

	if err := s.Stop(ctx); err != nil {
		return nil, err
	}
	if err := s.switchToBranch(ctx, id.BranchName()); err != nil {
		return nil, err
	}
	if err := s.restoreStash(ctx, id); err != nil {
		return nil, err
	}

	s.record("start", id, func(j ports.TicketRecorder) error { return j.MarkStarted(ctx, id) })

	return &domain.Attachment{Create: true, Session: id.SessionName()}, nil
}

// Resume returns the session of the ticket that is checked out
func (s *LifecycleService) Resume(ctx context.Context) (*domain.Attachment, error) {
	branch, err := s.vcs.CurrentBranch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read current branch: %w", err)
	}
	if branch == "" {
		return nil, fmt.Errorf("%w (HEAD is detached)", domain.ErrNoActiveTicket)
	}
	if branch == s.trunk {
		return nil, fmt.Errorf("%w (you were last seen on %s, not a ticket branch)", domain.ErrNoActiveTicket, s.trunk)
	}

	logging.Logger.Info("Resuming ticket", "branch", branch)
	return &domain.Attachment{Session: branch}, nil
}

// Stop stashes everything in the working copy, including untracked files,
// and returns to an up to date trunk. Safe to call when nothing is active.
func (s *LifecycleService) Stop(ctx context.Context) error {
	active, wasActive, err := s.ActiveTicket(ctx)
	if err != nil {
		return err
	}

	logging.Logger.Info("Parking working copy", "active", wasActive, "ticket", active.BranchName())

	if err := s.vcs.StageAll(ctx); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	if err := s.vcs.PushStash(ctx); err != nil {
		return fmt.Errorf("failed to stash changes: %w", err)
	}
	if err := s.vcs.Checkout(ctx, s.trunk); err != nil {
		return fmt.Errorf("failed to check out %s: %w", s.trunk, err)
	}
	if err := s.vcs.SyncTrunk(ctx); err != nil {
		return err
	}

	if wasActive {
		s.record("park", active, func(j ports.TicketRecorder) error { return j.MarkParked(ctx, active) })
	}
	return nil
}

// Kill parks the working copy and removes every trace of the ticket: its
// session, its branch and all of its stashes
func (s *LifecycleService) Kill(ctx context.Context, id domain.TicketID) (*KillResult, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	logging.Logger.Info("Killing ticket", "ticket", id.BranchName())

	if err := s.Stop(ctx); err != nil {
		return nil, err
	}

	result := &KillResult{Ticket: id}

	err := s.sessions.KillSession(ctx, id.SessionName())
	switch {
	case err == nil:
		result.SessionKilled = true
	case errors.Is(err, domain.ErrSessionNotFound):
		logging.Logger.Debug("No session to kill", "ticket", id.BranchName())
	default:
		return nil, fmt.Errorf("failed to kill session %s: %w", id.SessionName(), err)
	}

	if err := s.vcs.ForceDeleteBranch(ctx, id.BranchName()); err != nil {
		return nil, fmt.Errorf("failed to delete branch %s: %w", id.BranchName(), err)
	}

	err = s.locator.Locate(ctx, id).Drain(func(stash domain.Stash) error {
		logging.Logger.Info("Dropping stash", "ticket", id.BranchName(), "ref", stash.Ref, "subject", stash.Subject)
		if err := s.vcs.DropStash(ctx, stash.Ref); err != nil {
			return fmt.Errorf("failed to drop %s: %w", stash.Ref, err)
		}
		result.DroppedStashes++
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record("kill", id, func(j ports.TicketRecorder) error { return j.Delete(ctx, id) })

	return result, nil
}

// checkWorkspace fails unless the process runs in the workspace root.
// The session host starts in the caller's directory, so start refuses to run
// anywhere else.
func (s *LifecycleService) checkWorkspace() error {
	if s.workspace == "" {
		return nil
	}

	cwd, err := s.getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	if samePath(cwd, s.workspace) {
		return nil
	}

	logging.Logger.Warn("Refusing to start outside the workspace", "cwd", cwd, "workspace", s.workspace)
	return fmt.Errorf("%w: run this in %s (current directory is %s)", domain.ErrNotInWorkspace, s.workspace, cwd)
}

// switchToBranch checks out branch, creating it from trunk when missing
func (s *LifecycleService) switchToBranch(ctx context.Context, branch string) error {
	exists, err := s.vcs.BranchExists(ctx, branch)
	if err != nil {
		return fmt.Errorf("failed to look up branch %s: %w", branch, err)
	}

	if exists {
		if err := s.vcs.Checkout(ctx, branch); err != nil {
			return fmt.Errorf("failed to check out %s: %w", branch, err)
		}
		return nil
	}

	logging.Logger.Info("Creating ticket branch", "branch", branch, "from", s.trunk)
	if err := s.vcs.CreateBranch(ctx, branch, s.trunk); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branch, err)
	}
	return nil
}

// restoreStash pops the ticket's newest stash, if any, as unstaged changes.
// A conflicting pop leaves the stash in place for manual recovery.
func (s *LifecycleService) restoreStash(ctx context.Context, id domain.TicketID) error {
	stash, ok, err := s.locator.Locate(ctx, id).First()
	if err != nil {
		return fmt.Errorf("failed to list stashes: %w", err)
	}
	if !ok {
		logging.Logger.Debug("No stash to restore", "ticket", id.BranchName())
		return nil
	}

	logging.Logger.Info("Restoring stash", "ticket", id.BranchName(), "ref", stash.Ref, "hash", stash.Hash)
	if err := s.vcs.PopStash(ctx, stash.Ref); err != nil {
		return fmt.Errorf("failed to restore %s (the stash was kept): %w", stash.Ref, err)
	}
	if err := s.vcs.UnstageAll(ctx); err != nil {
		return fmt.Errorf("failed to unstage restored changes: %w", err)
	}
	return nil
}

// record writes a lifecycle transition to the journal. The journal is
// advisory, so failures are logged and otherwise ignored.
func (s *LifecycleService) record(action string, id domain.TicketID, fn func(ports.TicketRecorder) error) {
	if s.journal == nil {
		return
	}
	if err := fn(s.journal); err != nil {
		logging.Logger.Warn("Failed to record ticket transition", "action", action, "ticket", id.BranchName(), "error", err)
	}
}

// samePath compares two directories after resolving symlinks
func samePath(a, b string) bool {
	return resolvePath(a) == resolvePath(b)
}

func resolvePath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
