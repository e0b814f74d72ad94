package ports

import (
	"context"

	"ticket/internal/domain"
)

// BranchReader queries branch state
type BranchReader interface {
	BranchExists(ctx context.Context, branch string) (bool, error)
	CurrentBranch(ctx context.Context) (string, error)
	ListBranches(ctx context.Context, pattern string) ([]string, error)
}

// BranchWriter switches, creates and deletes branches
type BranchWriter interface {
	Checkout(ctx context.Context, branch string) error
	CreateBranch(ctx context.Context, branch, startPoint string) error
	ForceDeleteBranch(ctx context.Context, branch string) error
}

// WorkingCopy stages and unstages working-copy changes
type WorkingCopy interface {
	StageAll(ctx context.Context) error
	UnstageAll(ctx context.Context) error
}

// StashReader lists the stash
type StashReader interface {
	ListStashes(ctx context.Context) ([]domain.Stash, error)
}

// StashWriter pushes, applies and discards stash entries
type StashWriter interface {
	DropStash(ctx context.Context, ref string) error
	PopStash(ctx context.Context, ref string) error
	// PushStash saves the working copy. Nothing to save is not an error.
	PushStash(ctx context.Context) error
}

// TrunkSyncer updates the trunk branch from its upstream mirror
type TrunkSyncer interface {
	SyncTrunk(ctx context.Context) error
}

// RepositoryCloner creates a new working copy from an upstream
type RepositoryCloner interface {
	// Clone clones url into dir, which must not exist yet
	Clone(ctx context.Context, url, dir string) error
}

// VersionControl is the composite interface
type VersionControl interface {
	BranchReader
	BranchWriter
	StashReader
	StashWriter
	TrunkSyncer
	WorkingCopy
}
